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

import (
	"fmt"
	"time"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Filename must not be empty
//   - Department must not be empty
//   - Category must belong to the closed set
//   - UploadedAt must not be in the future
//
// NOT validated (defaults are legitimate):
//   - Title/Vendor (analyzer emits "Unknown Title"/"Unknown Vendor")
//   - Text (extraction failure degrades to empty text)
//   - Tokens/Vector (empty for empty text)
//   - ID (0 is valid before the sequence assigns one)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyFilename)
	}

	if doc.Department == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDepartment)
	}

	if !ValidCategory(doc.Category) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidDocument, ErrInvalidCategory, doc.Category)
	}

	if !doc.UploadedAt.IsZero() && doc.UploadedAt.After(time.Now()) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrInvalidUploadTime)
	}

	return nil
}

// ValidateUser validates a User according to domain rules.
func ValidateUser(user *User) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", ErrInvalidUser)
	}

	if user.Username == "" {
		return fmt.Errorf("%w: %w", ErrInvalidUser, ErrEmptyUsername)
	}

	if user.Department == "" {
		return fmt.Errorf("%w: %w", ErrInvalidUser, ErrEmptyDepartment)
	}

	return nil
}

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryEngineering, CategoryFinancial, CategoryLegal, CategorySafety, CategoryGeneral:
		return true
	}
	return false
}
