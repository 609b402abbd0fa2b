// Copyright 2025 Poiesic Systems
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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidUser indicates a User failed validation.
	ErrInvalidUser = errors.New("invalid user")

	// ErrAccessDenied indicates the requester's department does not permit
	// access to a document. Distinguishable from absence so denial is
	// never reported as a silent empty result.
	ErrAccessDenied = errors.New("access denied")

	// ErrEmptyFilename indicates the Filename field is empty.
	ErrEmptyFilename = errors.New("filename cannot be empty")

	// ErrEmptyDepartment indicates the Department field is empty.
	ErrEmptyDepartment = errors.New("department cannot be empty")

	// ErrInvalidCategory indicates a Category value outside the closed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidUploadTime indicates an upload timestamp in the future.
	ErrInvalidUploadTime = errors.New("upload time cannot be in the future")

	// ErrEmptyUsername indicates the Username field is empty.
	ErrEmptyUsername = errors.New("username cannot be empty")
)
