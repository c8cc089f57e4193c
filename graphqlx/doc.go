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

// Package graphqlx renders canonical error responses in the shape GraphQL
// servers return them: a gqlerror.Error whose extensions carry the error
// code.
//
// The exception produced here keeps the full canonical response, stack
// included, while the public GraphQL payload never carries the stack.
// Presenter and Recover plug into gqlgen style error and panic hooks.
package graphqlx
