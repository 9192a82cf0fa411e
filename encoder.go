package bloomfilter

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// Encoder turns an item into the canonical bytes that get hashed. The same
// logical item must always produce the same bytes, independent of where it
// lives in memory or which process encodes it.
type Encoder[T any] interface {
	// AppendItem appends the encoding of item to dst and returns the
	// extended slice.
	AppendItem(dst []byte, item T) []byte
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntegerEncoder encodes integers as 8 little-endian bytes after widening
// them to 64 bits.
type IntegerEncoder[T Integer] struct{}

func (IntegerEncoder[T]) AppendItem(dst []byte, item T) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(item))
}

// StringEncoder encodes a string as its bytes.
type StringEncoder[T ~string] struct{}

func (StringEncoder[T]) AppendItem(dst []byte, item T) []byte {
	return append(dst, item...)
}

// BytesEncoder encodes a byte slice as its contents.
type BytesEncoder[T ~[]byte] struct{}

func (BytesEncoder[T]) AppendItem(dst []byte, item T) []byte {
	return append(dst, item...)
}

// CBOREncoder encodes arbitrary values, structs included, with the CBOR
// core deterministic encoding: map keys are sorted and integers use their
// shortest form, so equal values always encode to equal bytes.
//
// The zero value is ready to use.
type CBOREncoder[T any] struct {
	mode cbor.EncMode
}

var coreDetMode = sync.OnceValues(func() (cbor.EncMode, error) {
	return cbor.CoreDetEncOptions().EncMode()
})

// NewCBOREncoder returns a deterministic CBOR encoder for items of type T.
func NewCBOREncoder[T any]() (CBOREncoder[T], error) {
	mode, err := coreDetMode()
	if err != nil {
		return CBOREncoder[T]{}, err
	}
	return CBOREncoder[T]{mode: mode}, nil
}

// AppendItem panics if T holds a value CBOR cannot represent, such as a
// channel or a func. That is a misuse of the encoder, not a runtime
// condition.
func (e CBOREncoder[T]) AppendItem(dst []byte, item T) []byte {
	mode := e.mode
	if mode == nil {
		var err error
		if mode, err = coreDetMode(); err != nil {
			panic(fmt.Sprintf("bloomfilter: cbor mode: %v", err))
		}
	}
	b, err := mode.Marshal(item)
	if err != nil {
		panic(fmt.Sprintf("bloomfilter: cannot encode %T item: %v", item, err))
	}
	return append(dst, b...)
}
