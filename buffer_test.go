package ren

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ren/driver/drivertest"
)

func TestBufferWriteRead(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf := ctx.NewBuffer()

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	buf.Write(StaticDraw, data)
	if got := buf.Size(); got != len(data) {
		t.Fatalf("Size() = %d, want %d", got, len(data))
	}

	out := make([]byte, 4)
	buf.Read(3, out)
	if diff := cmp.Diff(data[3:7], out); diff != "" {
		t.Errorf("Read(3) mismatch (-want +got):\n%s", diff)
	}

	whole := make([]byte, len(data))
	buf.Read(0, whole)
	if diff := cmp.Diff(data, whole); diff != "" {
		t.Errorf("Read(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestBufferRewriteResetsSize(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf := ctx.NewBuffer()
	buf.Write(DynamicDraw, make([]byte, 9))
	buf.Write(DynamicDraw, []byte{7, 7})
	if got := buf.Size(); got != 2 {
		t.Fatalf("Size() = %d, want 2", got)
	}
	wantPanic(t, "out of range [0:3] with size 2", func() { buf.Read(0, make([]byte, 3)) })
}

func TestBufferReadOutOfRange(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf := ctx.NewBuffer()
	buf.Write(StaticDraw, make([]byte, 8))

	wantPanic(t, "out of range [4:12] with size 8", func() { buf.Read(4, make([]byte, 8)) })
	wantPanic(t, "negative offset", func() { buf.Read(-1, make([]byte, 1)) })

	// A buffer that was never written has size zero, so any byte is out of
	// range.
	empty := ctx.NewBuffer()
	wantPanic(t, "out of range [0:1] with size 0", func() { empty.Read(0, make([]byte, 1)) })
}

func TestBufferZeroLengthRead(t *testing.T) {
	ctx, api := newTestContext(t)
	buf := ctx.NewBuffer()
	buf.Write(StaticDraw, make([]byte, 8))
	buf.Read(8, nil) // in range, nothing to copy
	if got := len(api.Calls("ReadBufferData")); got != 0 {
		t.Errorf("zero-length read reached the driver %d times", got)
	}
}

func TestBufferWriteOp(t *testing.T) {
	ctx, api := newTestContext(t)
	buf := ctx.NewBuffer()
	buf.Write(StaticDraw, []byte{1, 2, 3})
	want := []string{"CreateBuffer 1", "BufferData 1 3 0x88e4"}
	if diff := cmp.Diff(want, api.Ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBufferDestroyExactlyOnce(t *testing.T) {
	ctx, api := newTestContext(t)
	buf := ctx.NewBuffer()
	buf.Destroy()
	buf.Destroy()
	if got := len(api.Calls("DeleteBuffer")); got != 1 {
		t.Errorf("DeleteBuffer called %d times, want 1", got)
	}
	ctx.Close()
	if got := len(api.Calls("DeleteBuffer")); got != 1 {
		t.Errorf("DeleteBuffer called %d times after Close, want 1", got)
	}
}

func TestBufferUseAfterDestroy(t *testing.T) {
	ctx, _ := newTestContext(t)
	buf := ctx.NewBuffer()
	buf.Destroy()
	wantPanic(t, "buffer write on destroyed buffer", func() { buf.Write(StaticDraw, nil) })
	wantPanic(t, "buffer read on destroyed buffer", func() { buf.Read(0, nil) })
	wantPanic(t, "buffer size on destroyed buffer", func() { buf.Size() })
	wantPanic(t, "buffer id on destroyed buffer", func() { buf.ID() })
}

func TestBufferUnchecked(t *testing.T) {
	api := drivertest.New()
	buf := NewBufferUnchecked(api)
	buf.Write(StreamDraw, []byte{5, 6})
	out := make([]byte, 2)
	buf.Read(0, out)
	if diff := cmp.Diff([]byte{5, 6}, out); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}
	buf.Destroy()
	wantPanic(t, "on destroyed buffer", func() { buf.Write(StreamDraw, nil) })
	if got := len(api.Calls("DeleteBuffer")); got != 1 {
		t.Errorf("DeleteBuffer called %d times, want 1", got)
	}
}

func TestBufferUsageString(t *testing.T) {
	tests := []struct {
		usage BufferUsage
		want  string
	}{
		{StreamDraw, "stream draw"},
		{StaticDraw, "static draw"},
		{DynamicDraw, "dynamic draw"},
		{BufferUsage(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.usage.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFloat32Bytes(t *testing.T) {
	values := []float32{0, 1, -2.5, math.Pi}
	got := Float32Bytes(values...)
	if len(got) != 4*len(values) {
		t.Fatalf("len = %d, want %d", len(got), 4*len(values))
	}
	for i, want := range values {
		bits := binary.NativeEndian.Uint32(got[4*i:])
		if v := math.Float32frombits(bits); v != want {
			t.Errorf("value %d = %g, want %g", i, v, want)
		}
	}
	if got := Float32Bytes(); len(got) != 0 {
		t.Errorf("Float32Bytes() = %d bytes, want 0", len(got))
	}
}
