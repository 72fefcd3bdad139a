package components

import (
	"slot-booking/internal/handler"
	"slot-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewServiceTypeHandler,
		api.NewUserHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	slots *api.SlotHandler,
	bookings *api.BookingHandler,
	serviceTypes *api.ServiceTypeHandler,
	users *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Slots:        slots,
		Bookings:     bookings,
		ServiceTypes: serviceTypes,
		Users:        users,
	}
}
