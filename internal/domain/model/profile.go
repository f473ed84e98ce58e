// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"strings"
)

// Occupation classifications used for scenario personalization.
const (
	OccupationStudent      = "student"
	OccupationProfessional = "professional"
	OccupationFreelancer   = "freelancer"
	OccupationOther        = "other"
)

// Age group classifications.
const (
	AgeGroupTeen       = "teen"
	AgeGroupYoungAdult = "young-adult"
	AgeGroupAdult      = "adult"
	AgeGroupMature     = "mature"
)

// ErrMissingOccupation rejects profiles without an occupation classification.
var ErrMissingOccupation = errors.New("missing occupation")

// UserProfile is the opaque personalization input to scenario generation.
// Fields mirror the wire schema.
type UserProfile struct {
	AgeGroup         string   `json:"ageGroup"`
	Occupation       string   `json:"occupation"`
	OccupationDetail string   `json:"occupationDetail"`
	Interests        []string `json:"interests"`
}

// Validate enforces the one contract scenario generation depends on: a
// non-empty occupation classification.
func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Occupation) == "" {
		return ErrMissingOccupation
	}
	return nil
}

// IsStudent reports whether the profile should receive classroom-flavored
// fallback scenarios instead of workplace ones.
func (p UserProfile) IsStudent() bool {
	return p.Occupation == OccupationStudent
}
