// Package models - Member và các claims JWT thuộc domain auth.
package models

import (
	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member là tài khoản thành viên của hệ thống (chủ trại, nhân viên hợp tác xã)
type Member struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MemberID string             `json:"memberId" bson:"memberId" index:"unique"`
	FarmNo   int64              `json:"farmNo" bson:"farmNo" index:"single"`
	Name     string             `json:"name" bson:"name"`
	Lang     string             `json:"lang,omitempty" bson:"lang,omitempty"`
	IsBlock  bool               `json:"isBlock" bson:"isBlock"`
}

// MemberClaims chứa data được mã hóa trong JWT token đăng nhập của thành viên.
type MemberClaims struct {
	MemberID string `json:"memberId"`
	FarmNo   int64  `json:"farmNo"`
	Lang     string `json:"lang,omitempty"`
	jwt.StandardClaims
}

// SessionTokenType là giá trị bắt buộc của claim type trong token phiên xem báo cáo
const SessionTokenType = "share_session"

// ShareSessionClaims chứa data được mã hóa trong JWT phiên xem báo cáo qua share link.
// Token phiên chỉ sống 1 giờ, gắn chặt với share token và trang trại của báo cáo.
type ShareSessionClaims struct {
	Type       string `json:"type"`
	ShareToken string `json:"shareToken"`
	FarmNo     int64  `json:"farmNo"`
	MasterSeq  int64  `json:"masterSeq"`
	Lang       string `json:"lang"`
	jwt.StandardClaims
}

// ShareTokenResult là kết quả kiểm tra share token
type ShareTokenResult struct {
	Valid     bool   `json:"valid"`
	Expired   bool   `json:"expired"`
	MasterSeq int64  `json:"masterSeq,omitempty"`
	FarmNo    int64  `json:"farmNo,omitempty"`
	FarmNm    string `json:"farmNm,omitempty"`
	Message   string `json:"message,omitempty"`
}
