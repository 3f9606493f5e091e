package satmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, uint32(5), Add[uint32](2, 3))
	assert.Equal(t, uint32(math.MaxUint32), Add[uint32](math.MaxUint32, 1))
	assert.Equal(t, uint32(math.MaxUint32), Add[uint32](math.MaxUint32-1, math.MaxUint32-1))
	assert.Equal(t, uint32(math.MaxUint32), Add[uint32](math.MaxUint32, 0))
	assert.Equal(t, uint64(math.MaxUint64), Add[uint64](1<<63, 1<<63))
	assert.Equal(t, uint8(255), Add[uint8](200, 100))
}

func TestMul(t *testing.T) {
	assert.Equal(t, uint32(12), Mul[uint32](3, 4))
	assert.Equal(t, uint32(0), Mul[uint32](0, math.MaxUint32))
	assert.Equal(t, uint32(math.MaxUint32), Mul[uint32](1<<16, 1<<16))
	assert.Equal(t, uint64(math.MaxUint64), Mul[uint64](math.MaxUint64, 2))
}

func TestMax(t *testing.T) {
	assert.Equal(t, uint16(math.MaxUint16), Max[uint16]())
	assert.Equal(t, uint(math.MaxUint), Max[uint]())
}
