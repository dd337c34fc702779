package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const thresFloat64Eq = 1e-9

/*
EqualNearly 判断两个float是否近似相等，解决浮点精度导致不等
*/
func EqualNearly(a, b float64) bool {
	return EqualIn(a, b, thresFloat64Eq)
}

/*
EqualIn 判断两个float是否在一定范围内近似相等
*/
func EqualIn(a, b, thres float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= thres
}

func NumSign(val float64) int {
	if val > 0 {
		return 1
	} else if val < 0 {
		return -1
	}
	return 0
}

/*
SumAbs 计算映射中所有值绝对值之和
*/
func SumAbs(data map[string]float64) float64 {
	arr := make([]float64, 0, len(data))
	for _, v := range data {
		arr = append(arr, math.Abs(v))
	}
	return floats.Sum(arr)
}

/*
IsFinite 是否为有效浮点数，NaN和Inf返回false
*/
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
