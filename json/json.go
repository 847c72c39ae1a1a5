/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
// Wrap json library to control encoding.

package json

import (
	"bytes"
	"sync"

	"github.com/Velocidex/json"
	"github.com/Velocidex/ordereddict"
)

var (
	mu       sync.Mutex
	encoders = []*encoderHandler{}
)

type encoderHandler struct {
	sample interface{}
	cb     json.EncoderCallback
}

// Register a custom encoder for all values of the same type as
// sample. Should be called from an init() function.
func RegisterCustomEncoder(sample interface{}, cb json.EncoderCallback) {
	mu.Lock()
	defer mu.Unlock()

	encoders = append(encoders, &encoderHandler{sample, cb})
}

func NewEncOpts() *json.EncOpts {
	mu.Lock()
	defer mu.Unlock()

	opts := json.NewEncOpts()
	for _, h := range encoders {
		opts.WithCallback(h.sample, h.cb)
	}
	return opts
}

// Encodes an ordereddict with its keys in insertion order. Report
// files rely on this for a stable field order.
func encodeOrderedDict(v interface{}, opts *json.EncOpts) ([]byte, error) {
	dict, ok := v.(*ordereddict.Dict)
	if !ok {
		return nil, json.EncoderCallbackSkip
	}

	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for idx, k := range dict.Keys() {
		if idx > 0 {
			buf.WriteByte(',')
		}

		key, err := json.MarshalWithOptions(k, opts)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, _ := dict.Get(k)
		serialized, err := json.MarshalWithOptions(value, opts)
		if err != nil {
			return nil, err
		}
		buf.Write(serialized)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func init() {
	RegisterCustomEncoder(ordereddict.NewDict(), encodeOrderedDict)
}
