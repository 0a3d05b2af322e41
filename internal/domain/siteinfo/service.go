package siteinfo

import (
	"context"
	"fmt"
)

type Service struct {
	contact  ContactInfoRepository
	footer   FooterInfoRepository
	hospital HospitalInfoRepository
	hours    ClinicHoursRepository
}

func NewService(contact ContactInfoRepository, footer FooterInfoRepository, hospital HospitalInfoRepository, hours ClinicHoursRepository) *Service {
	return &Service{
		contact:  contact,
		footer:   footer,
		hospital: hospital,
		hours:    hours,
	}
}

func (s *Service) GetContactInfo(ctx context.Context) (*ContactInfo, error) {
	return s.contact.Get(ctx)
}

func (s *Service) SaveContactInfo(ctx context.Context, in *ContactInfo) error {
	if in.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if in.Address == "" {
		return fmt.Errorf("address is required")
	}
	return s.contact.Upsert(ctx, in)
}

func (s *Service) GetFooterInfo(ctx context.Context) (*FooterInfo, error) {
	return s.footer.Get(ctx)
}

func (s *Service) SaveFooterInfo(ctx context.Context, in *FooterInfo) error {
	if in.HospitalName == "" {
		return fmt.Errorf("hospital_name is required")
	}
	return s.footer.Upsert(ctx, in)
}

func (s *Service) GetHospitalInfo(ctx context.Context) (*HospitalInfo, error) {
	return s.hospital.Get(ctx)
}

func (s *Service) SaveHospitalInfo(ctx context.Context, in *HospitalInfo) error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.hospital.Upsert(ctx, in)
}

func (s *Service) GetClinicHours(ctx context.Context) (*ClinicHours, error) {
	return s.hours.Get(ctx)
}

func (s *Service) SaveClinicHours(ctx context.Context, in *ClinicHours) error {
	if in.WeekdayHours == "" {
		return fmt.Errorf("weekday_hours is required")
	}
	return s.hours.Upsert(ctx, in)
}
