/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package code provides parsing, normalization and validation for canonical
// error codes.
//
// A "code" is the stable, machine-readable identifier carried in the
// errorCode field of a canonical error response, such as "NOT_FOUND" or
// "INTERNAL_SERVER_ERROR". Codes are meant to be:
//
//   - short and stable;
//   - uppercased;
//   - underscore-separated (not dash- or space-separated);
//   - derivable from an HTTP status name (see FromStatus).
//
// This package defines the canonical representation and the functions that
// convert arbitrary user input to that canonical form.
package code
