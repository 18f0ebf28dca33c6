package etcd

import (
	"github.com/cockroachdb/errors"

	"github.com/overlaynet/overlayd/pkg/utils"
)

func encode(v any) (string, error) { //nolint
	var buf, err = utils.JSONEncode(v, "\t")
	if err != nil {
		return "", errors.Wrap(err, "encode failed")
	}
	return string(buf), nil
}

func decode(data []byte, v any) error {
	return utils.JSONDecode(data, v)
}
