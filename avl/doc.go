// Copyright 2025 Naren Yellavula
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

// Package avl provides generic height-balanced binary search trees for
// use as in-memory ordered indexes.
//
// Two containers share one balancing engine:
//
//   - BalancedTree is insert-only: Insert, Contains and in-order traversal.
//   - OrderedTree adds Remove, Min, Max, Clear, Clone, Move, a lazy
//     in-order Iterator and pre-, post- and level-order traversals.
//
// Inserting a value that compares equal to a stored value is a no-op: the
// stored value is kept and the size does not change.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex. Mutating a tree while an Iterator
// or sequence over it is live leaves the iteration undefined.
package avl
