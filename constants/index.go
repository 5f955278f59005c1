package constants

const (
	ERROR_INPUT                = "Dữ liệu không hợp lệ"
	ERROR_INTERNAL_ERROR       = "Lỗi hệ thống"
	ERROR_PARSE_DATA_TO_LOCALS = "Không đọc được dữ liệu đã xác thực"
	DATA_INPUT_IS_NOT_NUMBER   = "Tham số phải là số"
	NOT_ADMIN                  = "Không có quyền thực hiện"
	MISSING_LOGIN_INPUT        = "Thiếu thông tin đăng nhập"
	INVALID_USERNAME           = "Tài khoản không tồn tại"
	INVALID_PASSWORD           = "Mật khẩu không đúng"
	ACCOUNT_NOT_ACTIVE         = "Tài khoản đã bị khóa"
	NOT_FOUND                  = "Không tìm thấy dữ liệu"
)

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

// Trạng thái booking
const (
	BOOKING_PENDING   = "pending"
	BOOKING_CONFIRMED = "confirmed"
	BOOKING_CANCELLED = "cancelled"
	BOOKING_COMPLETED = "completed"
)

// Trạng thái thanh toán (trục độc lập với booking_status)
const (
	PAYMENT_PENDING  = "pending"
	PAYMENT_PAID     = "paid"
	PAYMENT_PARTIAL  = "partial"
	PAYMENT_REFUNDED = "refunded"
)

// Trạng thái xử lý liên hệ
const (
	INQUIRY_NEW         = "new"
	INQUIRY_IN_PROGRESS = "in_progress"
	INQUIRY_RESOLVED    = "resolved"
	INQUIRY_CLOSED      = "closed"
)

const PACKAGE_PAGE_SIZE = 12
