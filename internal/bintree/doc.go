// Package bintree builds binary trees from flat level-order sequences and
// walks them back out in inorder.
//
// # Construction
//
// FromLevelOrder places element 0 at the root and fills each following level
// left to right, so the node built from index k has its children at 2k+1 and
// 2k+2. The layout is positional only; values are never compared, and
// duplicates are allowed.
//
//	FromLevelOrder([]int{1, 2, 3, 4, 5, 6, 7})
//
//	        1
//	      /   \
//	     2     3
//	    / \   / \
//	   4   5 6   7
//
// # Traversal
//
// Inorder, All, and InorderRecursive all visit left subtree, node, right
// subtree. All is an iterator driven by an explicit stack, so deep trees do
// not grow the call stack. WriteInorder renders a traversal as a single
// console line.
//
// # Ownership
//
// A tree is a plain pointer structure with no sharing between parents.
// Dropping the root releases the whole tree to the garbage collector.
package bintree
