package main

import (
	"github.com/banbox/banalpha/entry"
)

func main() {
	entry.RunCmd()
}
