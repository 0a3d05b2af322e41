package siteinfo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the singleton row has never been written.
var ErrNotFound = errors.New("not found")

type ContactInfoRepository interface {
	Get(ctx context.Context) (*ContactInfo, error)
	Upsert(ctx context.Context, in *ContactInfo) error
}

type FooterInfoRepository interface {
	Get(ctx context.Context) (*FooterInfo, error)
	Upsert(ctx context.Context, in *FooterInfo) error
}

type HospitalInfoRepository interface {
	Get(ctx context.Context) (*HospitalInfo, error)
	Upsert(ctx context.Context, in *HospitalInfo) error
}

type ClinicHoursRepository interface {
	Get(ctx context.Context) (*ClinicHours, error)
	Upsert(ctx context.Context, in *ClinicHours) error
}
