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

package normalize

import (
	"net/http"

	"github.com/NVIDIA/cookbook/pkg/defaults"
	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/NVIDIA/cookbook/pkg/server"
)

// ParseRequest is the body accepted by HandleParse.
type ParseRequest struct {
	Input string `json:"input" yaml:"input"`
}

// ParseResponse carries the normalized name.
type ParseResponse struct {
	Msg string `json:"msg" yaml:"msg"`
}

// HandleParse normalizes the posted input with Name.
func HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cberrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	defer body.Close()

	reader, err := serializer.NewReader(serializer.FormatFromContentType(r.Header.Get("Content-Type")), body)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Unsupported request body format", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	var req ParseRequest
	if err := reader.Deserialize(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"Invalid parse request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	name, ok := Name(req.Input)
	if !ok {
		server.WriteError(w, r, http.StatusBadRequest, cberrors.ErrCodeInvalidRequest,
			"input contains no usable characters", false, map[string]any{
				"input": req.Input,
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ParseResponse{Msg: name})
}
