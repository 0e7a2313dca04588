package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireBuffers(t *testing.T) {
	t.Parallel()

	buf := getBuffer(0)
	assert.Empty(t, buf)
	assert.GreaterOrEqual(t, cap(buf), baseWireSize)

	buf = getBuffer(128)
	assert.GreaterOrEqual(t, cap(buf), baseWireSize+128*fieldWireSize)
	putBuffer(append(buf, "0200"...))

	assert.Empty(t, getBuffer(0), "pooled buffers come back empty")
	putBuffer(make([]byte, 0, maxPooledSize+1))

	src := []byte("0800")
	out := detach(src)
	src[0] = '9'
	assert.Equal(t, "0800", string(out))
	assert.Nil(t, detach(nil))
}
