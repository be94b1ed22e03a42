package model

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/libsv/go-bt/v2"
	"github.com/libsv/go-p2p/chaincfg/chainhash"
	"github.com/libsv/go-p2p/wire"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/keyio"
)

// maxVectorAllocation caps up-front allocations for varint-prefixed vectors
// so a hostile count cannot exhaust memory before the read fails.
const maxVectorAllocation = 1 << 16

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, errors.NewProcessingError("short read on uint32", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func writeInt32(buf *bytes.Buffer, v int32) {
	writeUint32(buf, uint32(v))
}

func readInt32(r *bytes.Reader) (int32, error) {
	v, err := readUint32(r)
	return int32(v), err
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func readUint64(r *bytes.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, errors.NewProcessingError("short read on uint64", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func writeInt64(buf *bytes.Buffer, v int64) {
	writeUint64(buf, uint64(v))
}

func readInt64(r *bytes.Reader) (int64, error) {
	v, err := readUint64(r)
	return int64(v), err
}

func writeAmount(buf *bytes.Buffer, a Amount) {
	writeInt64(buf, int64(a))
}

func readAmount(r *bytes.Reader) (Amount, error) {
	v, err := readInt64(r)
	return Amount(v), err
}

func writeVarInt(buf *bytes.Buffer, n uint64) {
	buf.Write(bt.VarInt(n).Bytes())
}

func readVarInt(r *bytes.Reader) (uint64, error) {
	n, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return 0, errors.NewProcessingError("short read on varint", err)
	}
	return n, nil
}

func writeVarBytes(buf *bytes.Buffer, b []byte) {
	writeVarInt(buf, uint64(len(b)))
	buf.Write(b)
}

func readVarBytes(r *bytes.Reader) ([]byte, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Len()) {
		return nil, errors.NewProcessingError("byte vector length %d exceeds remaining input", n)
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, errors.NewProcessingError("short read on byte vector", err)
	}
	return b, nil
}

func writeString(buf *bytes.Buffer, s string) {
	writeVarBytes(buf, []byte(s))
}

func readString(r *bytes.Reader) (string, error) {
	b, err := readVarBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeID(buf *bytes.Buffer, id keyio.ID) {
	buf.Write(id.Bytes())
}

func readID(r *bytes.Reader) (keyio.ID, error) {
	var b [keyio.IDLen]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return keyio.NilID, errors.NewProcessingError("short read on identifier", err)
	}
	return keyio.ID(b), nil
}

func writeHash(buf *bytes.Buffer, h chainhash.Hash) {
	buf.Write(h[:])
}

func readHash(r *bytes.Reader) (chainhash.Hash, error) {
	var b [chainhash.HashSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return chainhash.Hash{}, errors.NewProcessingError("short read on hash", err)
	}
	return chainhash.Hash(b), nil
}

func writeIDs(buf *bytes.Buffer, ids []keyio.ID) {
	writeVarInt(buf, uint64(len(ids)))
	for _, id := range ids {
		writeID(buf, id)
	}
}

func readIDs(r *bytes.Reader) ([]keyio.ID, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("identifier vector length %d too large", n)
	}

	ids := make([]keyio.ID, 0, n)
	for i := uint64(0); i < n; i++ {
		id, err := readID(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func writeAmounts(buf *bytes.Buffer, v []Amount) {
	writeVarInt(buf, uint64(len(v)))
	for _, a := range v {
		writeAmount(buf, a)
	}
}

func readAmounts(r *bytes.Reader) ([]Amount, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("amount vector length %d too large", n)
	}

	v := make([]Amount, 0, n)
	for i := uint64(0); i < n; i++ {
		a, err := readAmount(r)
		if err != nil {
			return nil, err
		}
		v = append(v, a)
	}
	return v, nil
}

func writeInt64s(buf *bytes.Buffer, v []int64) {
	writeVarInt(buf, uint64(len(v)))
	for _, n := range v {
		writeInt64(buf, n)
	}
}

func readInt64s(r *bytes.Reader) ([]int64, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("int64 vector length %d too large", n)
	}

	v := make([]int64, 0, n)
	for i := uint64(0); i < n; i++ {
		x, err := readInt64(r)
		if err != nil {
			return nil, err
		}
		v = append(v, x)
	}
	return v, nil
}

func writeInt32s(buf *bytes.Buffer, v []int32) {
	writeVarInt(buf, uint64(len(v)))
	for _, n := range v {
		writeInt32(buf, n)
	}
}

func readInt32s(r *bytes.Reader) ([]int32, error) {
	n, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxVectorAllocation {
		return nil, errors.NewProcessingError("int32 vector length %d too large", n)
	}

	v := make([]int32, 0, n)
	for i := uint64(0); i < n; i++ {
		x, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		v = append(v, x)
	}
	return v, nil
}

func writeDestination(buf *bytes.Buffer, d keyio.Destination) {
	buf.WriteByte(byte(d.Type))
	writeVarBytes(buf, d.Data)
}

func readDestination(r *bytes.Reader) (keyio.Destination, error) {
	t, err := r.ReadByte()
	if err != nil {
		return keyio.Destination{}, errors.NewProcessingError("short read on destination type", err)
	}

	data, err := readVarBytes(r)
	if err != nil {
		return keyio.Destination{}, err
	}

	return keyio.Destination{Type: keyio.DestinationType(t), Data: data}, nil
}
