package helper

import (
	"sort"
	"testing"

	"travel_manager/constants"
)

func TestCanTransitionBooking(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED, true},
		{constants.BOOKING_PENDING, constants.BOOKING_CANCELLED, true},
		{constants.BOOKING_PENDING, constants.BOOKING_COMPLETED, false},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_COMPLETED, true},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_CANCELLED, true},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_PENDING, false},
		{constants.BOOKING_COMPLETED, constants.BOOKING_CANCELLED, false},
		{constants.BOOKING_CANCELLED, constants.BOOKING_PENDING, false},
		{constants.BOOKING_CANCELLED, constants.BOOKING_CONFIRMED, false},
	}

	for _, tc := range cases {
		if got := CanTransitionBooking(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionBooking(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBookingStatusesAllowing(t *testing.T) {
	cases := []struct {
		target string
		want   []string
	}{
		{constants.BOOKING_CONFIRMED, []string{constants.BOOKING_PENDING}},
		{constants.BOOKING_COMPLETED, []string{constants.BOOKING_CONFIRMED}},
		{constants.BOOKING_CANCELLED, []string{constants.BOOKING_CONFIRMED, constants.BOOKING_PENDING}},
		{constants.BOOKING_PENDING, []string{}},
	}

	for _, tc := range cases {
		got := BookingStatusesAllowing(tc.target)
		sort.Strings(got)
		if len(got) != len(tc.want) {
			t.Errorf("BookingStatusesAllowing(%q) = %v, want %v", tc.target, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("BookingStatusesAllowing(%q) = %v, want %v", tc.target, got, tc.want)
				break
			}
		}
	}
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "cancelled", "completed"} {
		if !IsValidBookingStatus(status) {
			t.Errorf("IsValidBookingStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"", "done", "PENDING", "refunded"} {
		if IsValidBookingStatus(status) {
			t.Errorf("IsValidBookingStatus(%q) = true, want false", status)
		}
	}
}

func TestIsValidInquiryStatus(t *testing.T) {
	for _, status := range []string{"new", "in_progress", "resolved", "closed"} {
		if !IsValidInquiryStatus(status) {
			t.Errorf("IsValidInquiryStatus(%q) = false, want true", status)
		}
	}
	if IsValidInquiryStatus("pending") {
		t.Error("IsValidInquiryStatus(\"pending\") = true, want false")
	}
}
