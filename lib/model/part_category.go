package model

import (
	"strings"

	"github.com/pkg/errors"
)

type PartCategory int

// Declaration order matters: part identification walks categories in this order.
const (
	Body PartCategory = iota
	Cap
	Handle
	EndCap
	Pillow
	Moulding
	Interior
	Hardware
)

const PartCount = int(Hardware) + 1

var partKeys = [PartCount]string{
	Body:     "body",
	Cap:      "cap",
	Handle:   "handle",
	EndCap:   "endcap",
	Pillow:   "pillow",
	Moulding: "moulding",
	Interior: "interior",
	Hardware: "hardware",
}

var partNames = [PartCount]string{
	Body:     "Main Body",
	Cap:      "Cap Panel",
	Handle:   "Handles",
	EndCap:   "Endcaps",
	Pillow:   "Pillow",
	Moulding: "Moulding",
	Interior: "Interior",
	Hardware: "Hardware",
}

func AllParts() []PartCategory {
	result := make([]PartCategory, PartCount)
	for i := range result {
		result[i] = PartCategory(i)
	}
	return result
}

func (p PartCategory) IsValid() bool {
	return p >= Body && p <= Hardware
}

func (p PartCategory) String() string {
	if !p.IsValid() {
		return "<unknown>"
	}
	return partKeys[p]
}

func (p PartCategory) DisplayName() string {
	if !p.IsValid() {
		return "<unknown>"
	}
	return partNames[p]
}

func ParsePartCategory(s string) (PartCategory, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range partKeys {
		if k == key {
			return PartCategory(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidPartCategory, "%q", s)
}
