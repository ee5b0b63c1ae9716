// Package models - bảng mã dùng chung (mã hệ thống, mã hợp tác xã, cấu hình CValue)
// và nội dung trợ giúp đa ngôn ngữ.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CodeSys là mã hệ thống: pcode 01 (trạng thái nái), pcode 02 (công việc định kỳ)...
// Mỗi mã có tên theo từng ngôn ngữ, tra theo lang.
type CodeSys struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Pcode  string             `json:"pcode" bson:"pcode" index:"compound:pcode_code_lang"`
	Code   string             `json:"code" bson:"code" index:"compound:pcode_code_lang"`
	Lang   string             `json:"lang" bson:"lang" index:"compound:pcode_code_lang"`
	CodeNm string             `json:"codeNm" bson:"codeNm"`
	SortNo int                `json:"sortNo,omitempty" bson:"sortNo,omitempty"`
	UseYn  string             `json:"useYn,omitempty" bson:"useYn,omitempty"`
}

// CodeJohap là mã theo hợp tác xã, hiện dùng cho pcode 031 (lý do đào thải)
type CodeJohap struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Pcode  string             `json:"pcode" bson:"pcode" index:"compound:johap_pcode_code_lang"`
	Code   string             `json:"code" bson:"code" index:"compound:johap_pcode_code_lang"`
	Lang   string             `json:"lang" bson:"lang" index:"compound:johap_pcode_code_lang"`
	CodeNm string             `json:"codeNm" bson:"codeNm"`
	SortNo int                `json:"sortNo,omitempty" bson:"sortNo,omitempty"`
}

// CodeCValue là cấu hình giá trị hệ thống.
// CKey 941/942 ánh xạ mã quốc gia sang ngôn ngữ hiển thị.
type CodeCValue struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CKey   string             `json:"cKey" bson:"cKey" index:"compound:ckey_code_unique"`
	Code   string             `json:"code" bson:"code" index:"compound:ckey_code_unique"`
	CValue string             `json:"cValue" bson:"cValue"`
}

// HelpMessage là nội dung trợ giúp hiển thị theo màn hình và ngôn ngữ
type HelpMessage struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	HelpKey string             `json:"helpKey" bson:"helpKey" index:"compound:helpkey_lang_unique"`
	Lang    string             `json:"lang" bson:"lang" index:"compound:helpkey_lang_unique"`
	Title   string             `json:"title,omitempty" bson:"title,omitempty"`
	Content string             `json:"content" bson:"content"`
}
