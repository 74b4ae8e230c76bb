// quotes.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 * The quotations are taken from the public domain and attributed to respective creators.
 */

package main
package main

import (
	"math/rand/v2"
)

var shellTips = []string{
	"Insert 1 2 3 4 5 6 7 in order and the tree still ends up perfectly balanced",
	"Try insert 30 20 10 then visualize to watch a single right rotation",
	"insert 10 30 20 triggers a double rotation, the middle value becomes the root",
	"Removing a node with two children borrows the value of its in-order successor",
	"Duplicates are ignored, the first value inserted stays",
	"ctrl+y copies the sorted values to your clipboard",
	"visualize draws the tree sideways, larger values sit above smaller ones",
	"The balance factor next to each node is left height minus right height",
	"min and max walk a single spine, no full traversal needed",
	"clear empties the tree without restarting the shell",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.IntN(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(shellTips)
}
