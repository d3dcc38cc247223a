// Package booking реализует создание и отмену бронирований: проверка
// предусловий до отправки запроса и семантика "пустого" списка бронирований.
package booking

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ptakun123/HotelProj/internal/api"
	"github.com/Ptakun123/HotelProj/internal/auth"
	"github.com/Ptakun123/HotelProj/internal/session"
	"github.com/Ptakun123/HotelProj/models"
)

// Минимальная длина налогового идентификатора (NIP) для фактуры.
const minTaxIDLen = 10

// Ошибки предусловий бронирования. Ни одна из них не приводит к сетевому
// запросу: проверка выполняется целиком на клиенте.
var (
	ErrNotAuthenticated = errors.New("необходимо войти в систему")
	ErrMissingFullName  = errors.New("укажите имя и фамилию")
	ErrInvalidTaxID     = errors.New("NIP для фактуры должен содержать не менее 10 символов")
	ErrMissingDateRange = errors.New("не выбраны даты проживания")
)

// BillingForm — данные формы подтверждения бронирования.
type BillingForm struct {
	FullName string
	Invoice  bool   // true — фактура, false — чек
	TaxID    string // обязателен только для фактуры
}

// StayDates — даты проживания, переданные с экрана поиска. Если они пусты,
// рабочий процесс восстановит даты из хранилища сессии.
type StayDates struct {
	FirstNight string // YYYY-MM-DD
	LastNight  string // YYYY-MM-DD
}

// Workflow выполняет операции с бронированиями от имени текущего пользователя.
type Workflow struct {
	client  api.Client
	manager *auth.Manager
	store   *session.Store
}

// NewWorkflow создает Workflow.
func NewWorkflow(client api.Client, manager *auth.Manager, store *session.Store) *Workflow {
	return &Workflow{client: client, manager: manager, store: store}
}

// resolveDates возвращает даты из навигации либо восстанавливает их из
// хранилища сессии.
func (w *Workflow) resolveDates(dates StayDates) (StayDates, error) {
	if dates.FirstNight != "" && dates.LastNight != "" {
		return dates, nil
	}
	start, end, ok := w.store.SearchDates()
	if !ok {
		return StayDates{}, ErrMissingDateRange
	}
	return StayDates{FirstNight: start, LastNight: end}, nil
}

// Reserve создает бронирование выбранной комнаты. Предусловия проверяются
// по порядку: сессия, имя, NIP для фактуры, даты; любой отказ означает, что
// запрос на сервер не отправлялся.
func (w *Workflow) Reserve(ctx context.Context, room models.Room, form BillingForm, dates StayDates) error {
	user := w.manager.CurrentUser()
	if user == nil {
		return ErrNotAuthenticated
	}
	if form.FullName == "" {
		return ErrMissingFullName
	}
	if form.Invoice && len(form.TaxID) < minTaxIDLen {
		return ErrInvalidTaxID
	}
	resolved, err := w.resolveDates(dates)
	if err != nil {
		return err
	}

	req := models.ReservationRequest{
		RoomID:     room.ID,
		UserID:     user.ID,
		FirstNight: resolved.FirstNight,
		LastNight:  resolved.LastNight,
		FullName:   form.FullName,
		BillType:   models.BillReceipt,
	}
	if form.Invoice {
		req.BillType = models.BillInvoice
		req.TaxID = form.TaxID
	}

	slog.Info("Отправка бронирования",
		"id_room", req.RoomID, "first_night", req.FirstNight, "last_night", req.LastNight, "bill_type", req.BillType)
	return w.client.PostReservation(ctx, req)
}

// Cancel отменяет бронирование. При ошибке список у вызывающей стороны
// остается нетронутым.
func (w *Workflow) Cancel(ctx context.Context, reservationID int64) error {
	user := w.manager.CurrentUser()
	if user == nil {
		return ErrNotAuthenticated
	}
	return w.client.PostCancellation(ctx, models.CancellationRequest{
		ReservationID: reservationID,
		UserID:        user.ID,
	})
}

// List возвращает активные бронирования пользователя. Пустой список, ответ
// с message вместо списка и 404 равнозначны: бронирований нет, это не ошибка.
func (w *Workflow) List(ctx context.Context) ([]models.Reservation, error) {
	user := w.manager.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	reservations, err := w.client.UserReservations(ctx, user.ID, "active")
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return []models.Reservation{}, nil
		}
		return nil, err
	}
	return reservations, nil
}
