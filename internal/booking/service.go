package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Sujaybr27/VPlay/internal/email"
	"github.com/Sujaybr27/VPlay/internal/logger"
	"github.com/Sujaybr27/VPlay/internal/metrics"
	"github.com/Sujaybr27/VPlay/internal/payment"
	"github.com/Sujaybr27/VPlay/internal/user"
)

var ErrUserNotFound = errors.New("user not found")

type Service interface {
	Reserve(ctx context.Context, userID, slotID int) (*BookingDetails, error)
	ListByUser(ctx context.Context, userID int) ([]BookingDetails, error)
	ListAll(ctx context.Context) ([]BookingDetails, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error)
	StatsByLocation(ctx context.Context, from, to time.Time) ([]LocationStat, error)
}

type service struct {
	repo         Repository
	userRepo     user.Repository
	paymentRepo  payment.Repository
	emailService *email.Service
}

func NewService(
	repo Repository,
	userRepo user.Repository,
	paymentRepo payment.Repository,
	emailService *email.Service,
) Service {
	return &service{
		repo:         repo,
		userRepo:     userRepo,
		paymentRepo:  paymentRepo,
		emailService: emailService,
	}
}

// Reserve runs the reservation gate and, on success, records the simulated
// payment and queues the confirmation email. The gate's outcome is final
// once its transaction commits; payment and email failures are logged but
// never undo the booking.
func (s *service) Reserve(ctx context.Context, userID, slotID int) (*BookingDetails, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		metrics.RecordReservation("not_found")
		return nil, ErrUserNotFound
	}

	b, err := s.repo.Reserve(ctx, userID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			metrics.RecordReservation("not_found")
		case errors.Is(err, ErrSlotAlreadyBooked):
			// Expected under contention, not an application error.
			metrics.RecordReservation("conflict")
			logger.Debugf("Reservation conflict: slot %d already booked", slotID)
		default:
			metrics.RecordReservation("error")
			logger.Errorf("Reservation failed for slot %d: %v", slotID, err)
		}
		return nil, err
	}

	metrics.RecordReservation("won")

	details, err := s.repo.GetDetailsByID(ctx, b.ID)
	if err != nil {
		// The booking is committed; return it without the expansion.
		logger.Errorf("Failed to expand booking %d: %v", b.ID, err)
		return &BookingDetails{Booking: *b, Slot: SlotDetails{ID: b.SlotID}}, nil
	}

	if details.Slot.Court != nil {
		if _, err := s.paymentRepo.Record(ctx, b.ID, userID, details.Slot.Court.PriceCents); err != nil {
			logger.Errorf("Failed to record payment for booking %d: %v", b.ID, err)
		} else {
			metrics.RecordPayment()
		}
	}

	courtName := "Court"
	locationName := ""
	if details.Slot.Court != nil {
		courtName = details.Slot.Court.Name
		if details.Slot.Court.Location != nil {
			locationName = details.Slot.Court.Location.Name
		}
	}
	if err := s.emailService.SendBookingConfirmation(ctx, u.Email, u.Name, courtName, locationName, details.Slot.Start, details.Slot.End); err != nil {
		logger.Errorf("Failed to queue confirmation email for booking %d: %v", b.ID, err)
	}

	return details, nil
}

func (s *service) ListByUser(ctx context.Context, userID int) ([]BookingDetails, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]BookingDetails, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error) {
	return s.repo.StatsByDay(ctx, from, to)
}

func (s *service) StatsByLocation(ctx context.Context, from, to time.Time) ([]LocationStat, error) {
	return s.repo.StatsByLocation(ctx, from, to)
}
