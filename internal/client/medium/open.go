package medium

import (
	"context"
	"fmt"
)

// Open builds the Medium named by kind. path is the JSON document for
// KindFile and the database for KindSQLite; KindMemory ignores it. A positive
// quotaBytes caps the stored bytes. The returned close function releases the
// medium and is never nil.
func Open(ctx context.Context, kind Kind, path string, quotaBytes int64) (Medium, func() error, error) {
	noop := func() error { return nil }

	switch kind {
	case KindMemory:
		return WithQuota(NewMemory(), quotaBytes), noop, nil

	case KindFile:
		f, err := OpenFile(path)
		if err != nil {
			return nil, noop, err
		}
		return WithQuota(f, quotaBytes), noop, nil

	case KindSQLite:
		s, err := OpenSQLite(ctx, path, quotaBytes)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown medium %q", kind)
}
