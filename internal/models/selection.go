package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidSiteMode     = errors.New("invalid site mode")
	ErrInvalidPayloadRange = errors.New("invalid payload range")
)

// Wire values accepted for the non-site modes
const (
	SiteModeAll     = "ALL"
	SiteModeSuccess = "SUCCESS"
	SiteModeFailure = "FAILURE"
)

// SiteModeKind discriminates the SiteMode variants
type SiteModeKind int

const (
	AllCombined SiteModeKind = iota
	AllSuccessBySite
	AllFailureBySite
	SpecificSite
)

func (k SiteModeKind) String() string {
	switch k {
	case AllCombined:
		return "all_combined"
	case AllSuccessBySite:
		return "all_success_by_site"
	case AllFailureBySite:
		return "all_failure_by_site"
	case SpecificSite:
		return "specific_site"
	default:
		return fmt.Sprintf("SiteModeKind(%d)", int(k))
	}
}

// SiteMode selects which records feed the views. The zero value is AllCombined.
type SiteMode struct {
	kind SiteModeKind
	site string
}

func CombinedMode() SiteMode      { return SiteMode{kind: AllCombined} }
func SuccessBySiteMode() SiteMode { return SiteMode{kind: AllSuccessBySite} }
func FailureBySiteMode() SiteMode { return SiteMode{kind: AllFailureBySite} }

// SiteModeFor restricts the views to a single launch site
func SiteModeFor(site string) SiteMode {
	return SiteMode{kind: SpecificSite, site: site}
}

func (m SiteMode) Kind() SiteModeKind { return m.kind }

// Site returns the selected site; it is empty unless Kind is SpecificSite
func (m SiteMode) Site() string { return m.site }

// String returns the wire value (ALL, SUCCESS, FAILURE or the site name)
func (m SiteMode) String() string {
	switch m.kind {
	case AllSuccessBySite:
		return SiteModeSuccess
	case AllFailureBySite:
		return SiteModeFailure
	case SpecificSite:
		return m.site
	default:
		return SiteModeAll
	}
}

// ParseSiteMode converts a dropdown value into a SiteMode.
// Anything other than the three reserved values is treated as a site name.
func ParseSiteMode(value string) (SiteMode, error) {
	v := strings.TrimSpace(value)
	switch v {
	case "":
		return SiteMode{}, fmt.Errorf("%w: empty value", ErrInvalidSiteMode)
	case SiteModeAll:
		return CombinedMode(), nil
	case SiteModeSuccess:
		return SuccessBySiteMode(), nil
	case SiteModeFailure:
		return FailureBySiteMode(), nil
	default:
		return SiteModeFor(v), nil
	}
}

// PayloadRange is the closed interval [Lo, Hi] in kilograms
type PayloadRange struct {
	Lo float64
	Hi float64
}

// NewPayloadRange builds a validated range
func NewPayloadRange(lo, hi float64) (PayloadRange, error) {
	r := PayloadRange{Lo: lo, Hi: hi}
	if err := r.Validate(); err != nil {
		return PayloadRange{}, err
	}
	return r, nil
}

// Validate checks 0 <= Lo <= Hi with both bounds finite
func (r PayloadRange) Validate() error {
	if math.IsNaN(r.Lo) || math.IsNaN(r.Hi) || math.IsInf(r.Lo, 0) || math.IsInf(r.Hi, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidPayloadRange)
	}
	if r.Lo < 0 || r.Hi < 0 {
		return fmt.Errorf("%w: bounds must be non-negative, got [%g, %g]", ErrInvalidPayloadRange, r.Lo, r.Hi)
	}
	if r.Lo > r.Hi {
		return fmt.Errorf("%w: lower bound %g exceeds upper bound %g", ErrInvalidPayloadRange, r.Lo, r.Hi)
	}
	return nil
}

// Contains reports whether mass lies inside the interval, inclusive at both ends
func (r PayloadRange) Contains(mass float64) bool {
	return r.Lo <= mass && mass <= r.Hi
}

// Selection is the pair chosen by the user for one query
type Selection struct {
	Mode  SiteMode
	Range PayloadRange
}
