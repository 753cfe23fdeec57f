package templates

import (
	"strconv"

	"github.com/emiliopalmerini/launchdash/internal/util"
)

func formatKg(kg float64) string {
	return util.FormatKg(kg)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
