package clickhouse

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/service"
)

// hexDecoder decodes stored hex columns and keeps the first failure. Values
// that do not decode mean the archive is corrupt.
type hexDecoder struct {
	err error
}

func (d *hexDecoder) fixed(column, value string, size int) []byte {
	if d.err != nil {
		return make([]byte, size)
	}
	b, err := hexutil.Decode(value)
	if err == nil && len(b) != size {
		err = fmt.Errorf("want %d bytes, got %d", size, len(b))
	}
	if err != nil {
		d.err = fmt.Errorf("decode %s %q: %v: %w", column, value, err, service.ErrDataConsistency)
		return make([]byte, size)
	}
	return b
}

func (d *hexDecoder) hash(column, value string) common.Hash {
	return common.BytesToHash(d.fixed(column, value, common.HashLength))
}

func (d *hexDecoder) hashes(column string, values []string) []common.Hash {
	out := make([]common.Hash, 0, len(values))
	for _, v := range values {
		out = append(out, d.hash(column, v))
	}
	return out
}

func (d *hexDecoder) address(column, value string) common.Address {
	return common.BytesToAddress(d.fixed(column, value, common.AddressLength))
}

func (d *hexDecoder) optionalAddress(column string, value *string) *common.Address {
	if value == nil {
		return nil
	}
	addr := d.address(column, *value)
	return &addr
}

func (d *hexDecoder) bloom(column, value string) types.Bloom {
	return types.BytesToBloom(d.fixed(column, value, types.BloomByteLength))
}

func (d *hexDecoder) bytes(column, value string) []byte {
	if d.err != nil {
		return nil
	}
	b, err := hexutil.Decode(value)
	if err != nil {
		d.err = fmt.Errorf("decode %s %q: %v: %w", column, value, err, service.ErrDataConsistency)
		return nil
	}
	return b
}
