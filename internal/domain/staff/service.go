package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	doctors   DoctorRepository
	schedules ScheduleRepository
}

func NewService(doctors DoctorRepository, schedules ScheduleRepository) *Service {
	return &Service{doctors: doctors, schedules: schedules}
}

// -- Doctors --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if err := validateDoctor(d); err != nil {
		return err
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	if err := validateDoctor(d); err != nil {
		return err
	}
	return s.doctors.Update(ctx, d)
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

func (s *Service) ListActiveDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.ListActive(ctx)
}

// SetDoctorActive flips or sets the public display flag. A nil active
// toggles the current value.
func (s *Service) SetDoctorActive(ctx context.Context, id uuid.UUID, active *bool) (*Doctor, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		d.Active = *active
	} else {
		d.Active = !d.Active
	}
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func validateDoctor(d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if d.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	return nil
}

// -- Schedules --

func (s *Service) CreateSchedule(ctx context.Context, sc *Schedule) error {
	if err := validateSchedule(sc); err != nil {
		return err
	}
	return s.schedules.Create(ctx, sc)
}

func (s *Service) GetSchedule(ctx context.Context, id uuid.UUID) (*Schedule, error) {
	return s.schedules.GetByID(ctx, id)
}

func (s *Service) UpdateSchedule(ctx context.Context, sc *Schedule) error {
	if err := validateSchedule(sc); err != nil {
		return err
	}
	return s.schedules.Update(ctx, sc)
}

func (s *Service) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	return s.schedules.Delete(ctx, id)
}

func (s *Service) ListSchedules(ctx context.Context, limit, offset int) ([]*Schedule, int, error) {
	return s.schedules.List(ctx, limit, offset)
}

func (s *Service) ListActiveSchedules(ctx context.Context, doctorID *uuid.UUID) ([]*Schedule, error) {
	return s.schedules.ListActive(ctx, doctorID)
}

func (s *Service) SetScheduleActive(ctx context.Context, id uuid.UUID, active *bool) (*Schedule, error) {
	sc, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		sc.Active = *active
	} else {
		sc.Active = !sc.Active
	}
	if err := s.schedules.Update(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func validateSchedule(sc *Schedule) error {
	if sc.DoctorName == "" {
		return fmt.Errorf("doctor_name is required")
	}
	if sc.Weekday < 0 || sc.Weekday > 6 {
		return fmt.Errorf("weekday must be between 0 and 6")
	}
	if sc.StartTime == "" || sc.EndTime == "" {
		return fmt.Errorf("start_time and end_time are required")
	}
	return nil
}
