// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "testing"

func TestNewLogger(t *testing.T) {
	for _, tt := range []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"defaults", "warn", "console", false},
		{"debug_json", "debug", "json", false},
		{"bad_level", "banana", "json", true},
		{"bad_format", "info", "xml", true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Set(KeyLogLevel, tt.level)
			v.Set(KeyLogFormat, tt.format)

			logger, err := NewLogger(v)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewLogger succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			if logger == nil {
				t.Fatal("NewLogger returned nil logger")
			}
		})
	}
}
