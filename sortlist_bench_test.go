package sortlist

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/andy-kimball/arenaskl"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
)

// benchKey encode v so that byte order matches numeric order.
func benchKey(v int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v)^(1<<63))
	return b[:]
}

func BenchmarkListInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	l := New()

	for i := 0; i < b.N; i++ {
		l.Insert(rng.Int63())
	}
}

func BenchmarkSkiplistInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	skl := arenaskl.NewSkiplist(arenaskl.NewArena(math.MaxUint32))
	var it arenaskl.Iterator
	it.Init(skl)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		it.Add(benchKey(rng.Int63()), nil, 1)
	}
}

func BenchmarkMemdbInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	db := memdb.New(comparer.DefaultComparer, 0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		db.Put(benchKey(rng.Int63()), nil)
	}
}
