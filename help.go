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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage(width int) string {
	message := fmt.Sprintf(`

 **avlindex %s**

Self-balancing ordered index built on AVL trees, with an interactive shell to watch the balancing happen.
Every insert and remove keeps the tree height logarithmic, so lookups stay fast no matter the input order.

Built with Go %s

# 1. Commands
* **shell** (default) opens the interactive tree console
* **contacts** lists the sample contact directory and searches it with --search NAME
* **stocks** shows a price board that re-sorts as quotes change
* **bench** times inserts, searches and removals over a large random tree
* **settings** prints the configuration and creates ~/.avlindex.yaml if missing
* **version** prints the version

# 2. Shell commands
* insert N..., search N..., remove N...
* display, visualize, size, empty, min, max, clear
* help, exit

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, width, 3)
	return string(result)
}
