package handlers

import (
	"strings"

	"github.com/equinor/linref-api/internal/geom"
)

// GetOrdinate maps a request's ordinate name to the kernel's Ordinate
// type.
func GetOrdinate(name string) (geom.Ordinate, error) {
	switch strings.ToLower(name) {
	case "x":
		return geom.OrdinateX, nil
	case "y":
		return geom.OrdinateY, nil
	case "z":
		return geom.OrdinateZ, nil
	case "m":
		return geom.OrdinateM, nil
	default:
		return 0, newInvalidArgument("invalid ordinate '%s', valid options are: x, y, z, m", name)
	}
}
