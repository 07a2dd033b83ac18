package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
)

// Serialization here is intentionally dumb: fixed-size values written in
// little endian, one after another. No schema, no field names. The
// InputVersion constant is the schema; if the bytes change, the version
// changes. This keeps playthrough files small and the round-trip exact.

func Serialize(w io.Writer, data any) {
	err := binary.Write(w, binary.LittleEndian, data)
	Check(err)
}

func Deserialize(r io.Reader, data any) {
	err := binary.Read(r, binary.LittleEndian, data)
	Check(err)
}

func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	_, err := writer.Write(data)
	Check(err)
	Check(writer.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	reader, err := gzip.NewReader(bytes.NewBuffer(data))
	Check(err)
	unzipped, err := io.ReadAll(reader)
	Check(err)
	Check(reader.Close())
	return unzipped
}
