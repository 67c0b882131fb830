package cache

import (
	"encoding/json"
	"hash/fnv"
	"strconv"
)

// Key builds a deterministic cache key from an operation name and its
// JSON-encodable parameters (geometry digest, ordinate, from/to, measure,
// offset, ...). This is plain digest hashing with no cryptographic
// requirement, so the standard library's fnv is enough.
func Key(operation string, params interface{}) (string, error) {
	buf, err := json.Marshal(params)
	if err != nil {
		return "", err
	}

	h := fnv.New64a()
	h.Write([]byte(operation))
	h.Write([]byte{0})
	h.Write(buf)

	return operation + ":" + strconv.FormatUint(h.Sum64(), 16), nil
}
