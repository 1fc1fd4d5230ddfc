// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Handler timeouts
		{"EntryHandlerTimeout", EntryHandlerTimeout, 1 * time.Second, 30 * time.Second},
		{"SummaryHandlerTimeout", SummaryHandlerTimeout, 5 * time.Second, 60 * time.Second},
		{"CatalogLoadTimeout", CatalogLoadTimeout, 10 * time.Second, 5 * time.Minute},

		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 5 * time.Second, 2 * time.Minute},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 30 * time.Second},
		{"HTTPTLSHandshakeTimeout", HTTPTLSHandshakeTimeout, 1 * time.Second, 30 * time.Second},
		{"HTTPResponseHeaderTimeout", HTTPResponseHeaderTimeout, 1 * time.Second, 60 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 15 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHandlerTimeoutsFitWriteTimeout(t *testing.T) {
	// handlers must finish before the server gives up writing the response
	if SummaryHandlerTimeout > ServerWriteTimeout {
		t.Errorf("SummaryHandlerTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			SummaryHandlerTimeout, ServerWriteTimeout)
	}
	if EntryHandlerTimeout > ServerWriteTimeout {
		t.Errorf("EntryHandlerTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			EntryHandlerTimeout, ServerWriteTimeout)
	}
}

func TestReadHeaderTimeoutLessThanReadTimeout(t *testing.T) {
	if ServerReadHeaderTimeout >= ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should be less than ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}

func TestClientTimeoutCoversPhases(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}
	if HTTPResponseHeaderTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPResponseHeaderTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPResponseHeaderTimeout, HTTPClientTimeout)
	}
}

func TestBodyLimits(t *testing.T) {
	if MaxRequestBodyBytes <= 0 {
		t.Fatalf("MaxRequestBodyBytes must be positive, got %d", MaxRequestBodyBytes)
	}
	if MaxCatalogBytes < MaxRequestBodyBytes {
		t.Errorf("MaxCatalogBytes (%d) should not be smaller than MaxRequestBodyBytes (%d)",
			MaxCatalogBytes, MaxRequestBodyBytes)
	}
}
