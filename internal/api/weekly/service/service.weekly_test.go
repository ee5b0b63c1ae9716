package weeklysvc

import (
	"testing"

	models "github.com/wiselake/inspig-repo-sub000/internal/api/weekly/models"
)

func TestMasterVisibleFilter_ChiBaoCaoComplete(t *testing.T) {
	filter := masterVisibleFilter(1001, 55)
	if filter["masterSeq"] != int64(1001) || filter["farmNo"] != int64(55) {
		t.Errorf("filter phải giữ định danh báo cáo: %+v", filter)
	}
	if filter["status"] != models.StatusComplete {
		t.Errorf("luồng xem báo cáo chỉ được thấy báo cáo COMPLETE: %+v", filter)
	}
}
