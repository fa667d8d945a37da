package handlers

import (
	"html/template"
	"log"
	"net/http"

	"tour-booking-platform/internal/models"
	"tour-booking-platform/internal/services"
)

// ConfirmationHandler renders the page customers land on after paying
type ConfirmationHandler struct {
	bookingService services.BookingServiceInterface
}

// NewConfirmationHandler creates a new confirmation handler
func NewConfirmationHandler(bookingService services.BookingServiceInterface) *ConfirmationHandler {
	return &ConfirmationHandler{bookingService: bookingService}
}

type confirmationData struct {
	Found   bool
	Booking *models.Booking
}

var confirmationTemplate = template.Must(template.New("booking-success").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Booking Confirmation - Rwanda Visit Tours</title>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; background: #f0fdf4; margin: 0; padding: 2rem 1rem; }
        .card { max-width: 540px; margin: 3rem auto; background: white; border-radius: 12px; padding: 2.5rem; box-shadow: 0 4px 12px rgba(0,0,0,0.08); }
        h1 { color: #166534; margin-top: 0; }
        .detail { display: flex; justify-content: space-between; padding: 0.6rem 0; border-bottom: 1px solid #e5e7eb; }
        .detail span:first-child { color: #6b7280; }
        .amount { font-size: 1.25rem; font-weight: 700; color: #166534; }
        .notice { background: #ecfdf5; border: 1px solid #a7f3d0; border-radius: 8px; padding: 1rem; margin-top: 1.5rem; color: #065f46; }
        a.home { display: inline-block; margin-top: 1.5rem; color: #166534; font-weight: 600; }
    </style>
</head>
<body>
    <div class="card">
        {{if .Found}}
        <h1>Thank you, {{.Booking.CustomerName}}!</h1>
        <p>Your deposit has been received and your booking is confirmed.</p>
        <div class="detail"><span>Booking</span><span>{{.Booking.ItemName}}</span></div>
        <div class="detail"><span>Travellers</span><span>{{.Booking.People}}</span></div>
        {{if .Booking.ArrivalDate}}<div class="detail"><span>Arrival date</span><span>{{.Booking.ArrivalDate}}</span></div>{{end}}
        <div class="detail"><span>Deposit paid</span><span class="amount">{{.Booking.FormattedAmount}}</span></div>
        <div class="notice">
            A confirmation email is on its way to {{.Booking.CustomerEmail}}.
            The remaining balance is payable on arrival.
        </div>
        {{else}}
        <h1>Payment received</h1>
        <p>
            Your payment went through, but we could not find your booking
            details yet. This usually resolves within a minute. If you do not
            receive a confirmation email, please contact us at
            <a href="mailto:bookings@rwandavisittours.com">bookings@rwandavisittours.com</a>
            and we will sort it out.
        </p>
        {{end}}
        <a class="home" href="/">&larr; Back to home</a>
    </div>
</body>
</html>`))

// BookingSuccess handles GET /booking-success?session_id=...
//
// The page is best-effort: the webhook that records the booking races the
// customer's redirect, so a missing row renders a friendly holding message
// rather than an error.
func (h *ConfirmationHandler) BookingSuccess(w http.ResponseWriter, r *http.Request) {
	data := confirmationData{}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID != "" {
		booking, err := h.bookingService.GetBySessionID(sessionID)
		if err == nil {
			data.Found = true
			data.Booking = booking
		} else if err != models.ErrBookingNotFound {
			log.Printf("Failed to load booking for session %s: %v", sessionID, err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := confirmationTemplate.Execute(w, data); err != nil {
		log.Printf("Failed to render confirmation page: %v", err)
	}
}

// BookingCancelled handles GET /booking-cancelled, where the hosted payment
// page sends customers who abandon checkout
func (h *ConfirmationHandler) BookingCancelled(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Booking Cancelled - Rwanda Visit Tours</title>
</head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; text-align: center; padding: 4rem 1rem;">
    <h1>Booking cancelled</h1>
    <p>No payment was taken. You can restart your booking whenever you are ready.</p>
    <a href="/">&larr; Back to home</a>
</body>
</html>`))
}
