package models

import "testing"

func TestAccommodationCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     AccommodationCreateRequest
		wantErr bool
	}{
		{
			name:    "valid hotel",
			req:     AccommodationCreateRequest{Type: AccommodationHotel, Name: "Kigali Serena", Rating: 5},
			wantErr: false,
		},
		{
			name:    "valid apartment without rating",
			req:     AccommodationCreateRequest{Type: AccommodationApartment, Name: "Nyarutarama Loft"},
			wantErr: false,
		},
		{
			name:    "hotel without rating",
			req:     AccommodationCreateRequest{Type: AccommodationHotel, Name: "Kigali Serena"},
			wantErr: true,
		},
		{
			name:    "hotel rating out of range",
			req:     AccommodationCreateRequest{Type: AccommodationHotel, Name: "Kigali Serena", Rating: 6},
			wantErr: true,
		},
		{
			name:    "apartment with rating",
			req:     AccommodationCreateRequest{Type: AccommodationApartment, Name: "Nyarutarama Loft", Rating: 4},
			wantErr: true,
		},
		{
			name:    "invalid type",
			req:     AccommodationCreateRequest{Type: "hostel", Name: "Budget Beds"},
			wantErr: true,
		},
		{
			name:    "blank name",
			req:     AccommodationCreateRequest{Type: AccommodationHotel, Name: "   ", Rating: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
