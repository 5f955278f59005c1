package helper

import "travel_manager/constants"

// bookingTransitions: pending -> confirmed/cancelled, confirmed -> completed/cancelled.
// completed và cancelled là trạng thái cuối.
var bookingTransitions = map[string][]string{
	constants.BOOKING_PENDING:   {constants.BOOKING_CONFIRMED, constants.BOOKING_CANCELLED},
	constants.BOOKING_CONFIRMED: {constants.BOOKING_COMPLETED, constants.BOOKING_CANCELLED},
}

// CanTransitionBooking kiểm tra chuyển trạng thái booking có hợp lệ không
func CanTransitionBooking(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BookingStatusesAllowing trả các trạng thái nguồn được phép chuyển sang target.
// Dùng cho bulk update dạng set-based: WHERE booking_status IN (...)
func BookingStatusesAllowing(target string) []string {
	froms := []string{}
	for from, nexts := range bookingTransitions {
		for _, next := range nexts {
			if next == target {
				froms = append(froms, from)
			}
		}
	}
	return froms
}

func IsValidBookingStatus(status string) bool {
	switch status {
	case constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED,
		constants.BOOKING_CANCELLED, constants.BOOKING_COMPLETED:
		return true
	}
	return false
}

func IsValidInquiryStatus(status string) bool {
	switch status {
	case constants.INQUIRY_NEW, constants.INQUIRY_IN_PROGRESS,
		constants.INQUIRY_RESOLVED, constants.INQUIRY_CLOSED:
		return true
	}
	return false
}
