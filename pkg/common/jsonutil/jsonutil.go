// Package jsonutil funnels JSON marshalling through sonic so hot paths
// and storage share one codec.
package jsonutil

import "github.com/bytedance/sonic"

func Marshal(v any) ([]byte, error) { return sonic.Marshal(v) }

func Unmarshal(data []byte, v any) error { return sonic.Unmarshal(data, v) }
