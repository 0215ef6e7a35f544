package order

import (
	"os"
	"testing"

	"github.com/xiebiao/bookmart/pkg/metrics"
)

// 用例代码会直接操作Prometheus指标,测试前必须完成注册
func TestMain(m *testing.M) {
	metrics.InitMetrics()
	os.Exit(m.Run())
}
