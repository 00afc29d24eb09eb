// Copyright 2021 FerretDB Inc.
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

package bson

// NullType is the type of [Null], the single BSON null value.
type NullType struct{}

// Null is the single BSON null value.
var Null = NullType{}

// UndefinedType is the type of [UndefinedValue] (deprecated on the wire but
// still a valid type tag a decoder must accept).
type UndefinedType struct{}

// UndefinedValue is the single BSON undefined value.
var UndefinedValue = UndefinedType{}

// MinKeyType is the type of [MinKey].
type MinKeyType struct{}

// MinKey compares less than every other BSON value.
var MinKey = MinKeyType{}

// MaxKeyType is the type of [MaxKey].
type MaxKeyType struct{}

// MaxKey compares greater than every other BSON value.
var MaxKey = MaxKeyType{}
