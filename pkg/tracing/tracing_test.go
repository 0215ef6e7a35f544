package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// TestInitTracer 测试Tracer初始化
func TestInitTracer(t *testing.T) {
	shutdown, err := InitTracer("bookmart-test", "localhost:4317")
	if err != nil {
		t.Fatalf("初始化Tracer失败: %v", err)
	}
	// 本地没有Collector时flush会失败，忽略关闭错误
	defer func() { _ = shutdown(context.Background()) }()

	tracer := otel.Tracer("test")
	if tracer == nil {
		t.Error("全局TracerProvider未设置")
	}
}

// TestStartSpan 测试Span创建与父子关系
func TestStartSpan(t *testing.T) {
	shutdown, err := InitTracer("bookmart-test", "localhost:4317")
	if err != nil {
		t.Fatalf("初始化Tracer失败: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	t.Run("创建根Span", func(t *testing.T) {
		ctx, span := StartSpan(context.Background(), "bookmart-test", "ListBooks")
		defer span.End()

		if !span.SpanContext().IsValid() {
			t.Error("Span无效")
		}

		traceID := span.SpanContext().TraceID().String()
		if traceID == "" || traceID == "00000000000000000000000000000000" {
			t.Errorf("TraceID无效: %s", traceID)
		}

		if got := ExtractTraceID(ctx); got != traceID {
			t.Errorf("ExtractTraceID不匹配: expected=%s, got=%s", traceID, got)
		}
	})

	t.Run("子Span继承TraceID", func(t *testing.T) {
		ctx, rootSpan := StartSpan(context.Background(), "bookmart-test", "CreateOrder")
		defer rootSpan.End()

		rootTraceID := rootSpan.SpanContext().TraceID().String()
		rootSpanID := rootSpan.SpanContext().SpanID().String()

		_, childSpan := StartSpan(ctx, "bookmart-test", "SaveOrder")
		defer childSpan.End()

		if childSpan.SpanContext().TraceID().String() != rootTraceID {
			t.Errorf("子Span的TraceID不匹配: root=%s, child=%s",
				rootTraceID, childSpan.SpanContext().TraceID().String())
		}
		if childSpan.SpanContext().SpanID().String() == rootSpanID {
			t.Error("子Span的SpanID不应与根Span相同")
		}
	})
}

// TestSpanAttributes 测试Span属性设置
func TestSpanAttributes(t *testing.T) {
	shutdown, err := InitTracer("bookmart-test", "localhost:4317")
	if err != nil {
		t.Fatalf("初始化Tracer失败: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	_, span := StartSpan(context.Background(), "bookmart-test", "GetOrder")
	defer span.End()

	// 属性无法直接读取，这里只验证调用不panic
	span.SetAttributes(
		attribute.Int64("order_id", 42),
		attribute.String("status", "shipped"),
		attribute.Int("item_count", 3),
	)
}

// TestExtractFromEmptyContext 无Span的Context应返回空串
func TestExtractFromEmptyContext(t *testing.T) {
	if got := ExtractTraceID(context.Background()); got != "" {
		t.Errorf("期望空TraceID，实际%s", got)
	}
	if got := ExtractSpanID(context.Background()); got != "" {
		t.Errorf("期望空SpanID，实际%s", got)
	}
}
