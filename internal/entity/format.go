package entity

import (
	"fmt"
	"strconv"

	"golang.org/x/text/message"
)

// Unit suffixes shown after happiness and fame levels.
const (
	heartSuffix = "♥s"
	starSuffix  = "★s"
)

func hearts(n int) string { return fmt.Sprintf("%d%s", n, heartSuffix) }

func stars(n int) string { return fmt.Sprintf("%d%s", n, starSuffix) }

// dollars formats an amount with the printer's digit grouping.
func dollars(p *message.Printer, n int) string {
	return p.Sprintf("$%d", n)
}

func raw(n int) string { return strconv.Itoa(n) }
