package service_test

import (
	"context"
	"errors"
	"testing"

	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/booking/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRequest(hotel string, duration int, customer string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		HotelName:    hotel,
		Duration:     &duration,
		CustomerName: customer,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  newRequest("Grand Budapest", 3, "Zero"),
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req:  newRequest("Grand Budapest", 3, "Zero"),
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.HotelName, res.HotelName)
			assert.Equal(t, *tt.req.Duration, res.Duration)
			assert.Equal(t, tt.req.CustomerName, res.CustomerName)

			_, parseErr := uuid.Parse(res.BookingID)
			assert.NoError(t, parseErr)
		})
	}
}

func TestBookingService_Create_InsertsReturnedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	var inserted model.Booking

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			inserted = booking

			return nil
		})

	res, err := svc.Create(context.Background(), newRequest("Hotel", 2, "Guest"))
	require.NoError(t, err)

	assert.Equal(t, inserted.ID, res.BookingID)
	assert.Equal(t, inserted.HotelName, res.HotelName)
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantIDs   []string
	}{
		{
			name: "returns bookings in repository order",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return([]model.Booking{
						{ID: "b", HotelName: "B", Duration: 2, CustomerName: "Y"},
						{ID: "a", HotelName: "A", Duration: 1, CustomerName: "X"},
					}, nil)
			},
			wantIDs: []string{"b", "a"},
		},
		{
			name: "empty store",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(nil, nil)
			},
			wantIDs: []string{},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)

			ids := make([]string, 0, len(res))
			for _, booking := range res {
				ids = append(ids, booking.BookingID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestBookingService_CreateThenList(t *testing.T) {
	svc := service.New(repository.New(mocks.NewOtel()), mocks.NewOtel())
	ctx := context.Background()

	created := make([]dto.BookingResponse, 0, 3)
	for _, name := range []string{"Alpha", "Bravo", "Charlie"} {
		res, err := svc.Create(ctx, newRequest(name, 1, "Guest"))
		require.NoError(t, err)

		created = append(created, res)
	}

	for range 2 {
		listed, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, dto.BookingsResponse(created), listed)
	}
}
