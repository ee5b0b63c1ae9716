package comsvc

import (
	"testing"

	commodels "github.com/wiselake/inspig-repo-sub000/internal/api/com/models"
)

func newTestService(snap *codeSnapshot) *CodeService {
	s := &CodeService{}
	s.snapshot.Store(snap)
	return s
}

func TestCodeName_FallbackVeMaGoc(t *testing.T) {
	s := newTestService(&codeSnapshot{
		codes: map[string]string{
			codeKey("01", "100", "ko"): "후보돈",
			codeKey("01", "100", "vi"): "Nái hậu bị",
		},
		countryLang: map[string]string{},
		help:        map[string]commodels.HelpMessage{},
	})

	if got := s.CodeName("01", "100", "vi"); got != "Nái hậu bị" {
		t.Errorf("tra đúng ngôn ngữ sai: %s", got)
	}
	// Thiếu bản dịch thì rơi về tiếng Hàn
	if got := s.CodeName("01", "100", "en"); got != "후보돈" {
		t.Errorf("fallback tiếng Hàn sai: %s", got)
	}
	// Không có trong cache thì trả về mã gốc
	if got := s.CodeName("01", "999", "ko"); got != "999" {
		t.Errorf("mã không có phải trả về mã gốc, có %s", got)
	}
	if got := s.CodeName("01", "", "ko"); got != "" {
		t.Errorf("mã rỗng phải trả về rỗng, có %s", got)
	}
}

func TestLangFromCountry(t *testing.T) {
	s := newTestService(&codeSnapshot{
		codes:       map[string]string{},
		countryLang: map[string]string{"KR": "ko", "VN": "vi"},
		help:        map[string]commodels.HelpMessage{},
	})

	if got := s.LangFromCountry("VN", "ko"); got != "vi" {
		t.Errorf("LangFromCountry(VN) = %s, muốn vi", got)
	}
	if got := s.LangFromCountry("JP", "ko"); got != "ko" {
		t.Errorf("quốc gia không có phải trả về mặc định, có %s", got)
	}
	if got := s.LangFromCountry("", "en"); got != "en" {
		t.Errorf("mã quốc gia rỗng phải trả về mặc định, có %s", got)
	}
}

func TestHelpMessage_FallbackTiengHan(t *testing.T) {
	s := newTestService(&codeSnapshot{
		codes:       map[string]string{},
		countryLang: map[string]string{},
		help: map[string]commodels.HelpMessage{
			"calendar:ko": {HelpKey: "calendar", Lang: "ko", Content: "도움말"},
		},
	})

	if msg := s.HelpMessage("calendar", "en"); msg == nil || msg.Content != "도움말" {
		t.Errorf("thiếu bản dịch phải fallback tiếng Hàn, có %+v", msg)
	}
	if msg := s.HelpMessage("unknown", "ko"); msg != nil {
		t.Errorf("key không có phải trả về nil, có %+v", msg)
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"ko-KR,ko;q=0.9,en-US;q=0.8", "ko"},
		{"vi", "vi"},
		{"en-US,en;q=0.5", "en"},
		{"ja,zh;q=0.9", "ko"}, // không hỗ trợ thì về mặc định
		{"", "ko"},
		{"fr;q=0.8, VI-vn;q=0.7", "vi"},
	}
	for _, tt := range tests {
		if got := ParseAcceptLanguage(tt.header, "ko"); got != tt.want {
			t.Errorf("ParseAcceptLanguage(%q) = %s, muốn %s", tt.header, got, tt.want)
		}
	}
}
