// Package authdto - DTO cho share link báo cáo tuần.
package authdto

// ReportTypeWeekly là loại báo cáo duy nhất đang hỗ trợ share link
const ReportTypeWeekly = "weekly"

// GenerateShareTokenInput là body của POST /auth/share/generate
type GenerateShareTokenInput struct {
	MasterSeq  int64  `json:"masterSeq" validate:"required"`
	FarmNo     int64  `json:"farmNo" validate:"required"`
	ReportType string `json:"reportType" validate:"required"`
	ExpireDays int    `json:"expireDays" validate:"omitempty,min=1,max=90"` // Bỏ trống dùng mặc định cấu hình
}

// ShareTokenInfo là thông tin share token trả về cho client
type ShareTokenInfo struct {
	ShareToken    string `json:"shareToken"`
	TokenExpireDt string `json:"tokenExpireDt"` // YYYYMMDD, hết hạn cuối ngày KST
}

// ViewSessionOutput là kết quả mở báo cáo qua share link:
// token phiên 1 giờ và thông tin hiển thị ban đầu.
type ViewSessionOutput struct {
	SessionToken string `json:"sessionToken"`
	ExpiresIn    int    `json:"expiresIn"` // Giây
	MasterSeq    int64  `json:"masterSeq"`
	FarmNo       int64  `json:"farmNo"`
	FarmNm       string `json:"farmNm"`
	Lang         string `json:"lang"`
	FarmMismatch bool   `json:"farmMismatch"` // Đăng nhập bằng thành viên trại khác
}
