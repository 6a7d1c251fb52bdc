package usecase

import (
	"context"

	"hospital-portal/internal/converter"
	"hospital-portal/internal/delivery/dto"
	"hospital-portal/internal/domain/entity"
	"hospital-portal/internal/domain/gateway"
	"hospital-portal/internal/service"

	"github.com/sirupsen/logrus"
)

type SlotUsecase interface {
	MySlots(ctx context.Context) (*dto.SlotListResponse, error)
	AvailableSlots(ctx context.Context) (*dto.SlotListResponse, error)
	Create(ctx context.Context, req *dto.SlotRequest) error
	Edit(ctx context.Context, slotID string, req *dto.SlotRequest) error
	Delete(ctx context.Context, slotID string) error
}

type slotUsecase struct {
	log            *logrus.Logger
	bookingGateway gateway.BookingGateway
	viewCache      *service.ViewCache
}

func NewSlotUsecase(
	log *logrus.Logger,
	bookingGateway gateway.BookingGateway,
	viewCache *service.ViewCache,
) SlotUsecase {
	return &slotUsecase{
		log:            log,
		bookingGateway: bookingGateway,
		viewCache:      viewCache,
	}
}

// MySlots lists the doctor's own slots through the per-session view cache.
func (u *slotUsecase) MySlots(ctx context.Context) (*dto.SlotListResponse, error) {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var slots []entity.Slot
	hit, err := u.viewCache.Get(ctx, subject, service.ViewMySlots, &slots)
	if err != nil {
		u.log.Warnf("Slots view read failed for subject %s: %+v", subject, err)
	}
	if !hit {
		slots, err = u.bookingGateway.MySlots(ctx, bearer)
		if err != nil {
			return nil, err
		}
		if err := u.viewCache.Put(ctx, subject, service.ViewMySlots, slots); err != nil {
			u.log.Warnf("Slots view write failed for subject %s: %+v", subject, err)
		}
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// AvailableSlots lists bookable slots for patients. Availability changes
// under other patients' bookings, so this is never cached.
func (u *slotUsecase) AvailableSlots(ctx context.Context) (*dto.SlotListResponse, error) {
	_, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := u.bookingGateway.AvailableSlots(ctx, bearer)
	if err != nil {
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// Create adds a slot and invalidates the cached list; the bookings service
// assigns the id, so the next listing refetches.
func (u *slotUsecase) Create(ctx context.Context, req *dto.SlotRequest) error {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return err
	}

	draft := &entity.SlotDraft{
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		MaxAppointmentCount: req.MaxAppointmentCount,
	}
	if err := u.bookingGateway.AddSlot(ctx, bearer, draft); err != nil {
		u.log.Warnf("Slot creation failed for subject %s: %+v", subject, err)
		return err
	}

	if err := u.viewCache.Invalidate(ctx, subject, service.ViewMySlots); err != nil {
		u.log.Warnf("Failed to invalidate slots view for subject %s: %+v", subject, err)
	}
	return nil
}

// Edit updates a slot and patches the cached list in place after the
// bookings service confirmed the change.
func (u *slotUsecase) Edit(ctx context.Context, slotID string, req *dto.SlotRequest) error {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return err
	}

	draft := &entity.SlotDraft{
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		MaxAppointmentCount: req.MaxAppointmentCount,
	}
	if err := u.bookingGateway.EditSlot(ctx, bearer, slotID, draft); err != nil {
		u.log.Warnf("Slot %s edit failed for subject %s: %+v", slotID, subject, err)
		return err
	}

	u.patchSlots(ctx, subject, func(slots []entity.Slot) []entity.Slot {
		for i := range slots {
			if slots[i].ID == slotID {
				slots[i].StartTime = req.StartTime
				slots[i].EndTime = req.EndTime
				slots[i].MaxAppointmentCount = req.MaxAppointmentCount
				break
			}
		}
		return slots
	})
	return nil
}

// Delete removes a slot and drops it from the cached list without a refetch.
func (u *slotUsecase) Delete(ctx context.Context, slotID string) error {
	subject, bearer, err := sessionFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.bookingGateway.DeleteSlot(ctx, bearer, slotID); err != nil {
		u.log.Warnf("Slot %s deletion failed for subject %s: %+v", slotID, subject, err)
		return err
	}

	u.patchSlots(ctx, subject, func(slots []entity.Slot) []entity.Slot {
		kept := slots[:0]
		for _, slot := range slots {
			if slot.ID != slotID {
				kept = append(kept, slot)
			}
		}
		return kept
	})
	return nil
}

func (u *slotUsecase) patchSlots(ctx context.Context, subject string, edit func([]entity.Slot) []entity.Slot) {
	var slots []entity.Slot
	hit, err := u.viewCache.Get(ctx, subject, service.ViewMySlots, &slots)
	if err != nil || !hit {
		return
	}
	if err := u.viewCache.Put(ctx, subject, service.ViewMySlots, edit(slots)); err != nil {
		u.log.Warnf("Failed to patch slots view for subject %s: %+v", subject, err)
	}
}
