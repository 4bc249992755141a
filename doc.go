/*
Package ordtree is the home of an ordered container of unique integer keys, organized
as a plain (unbalanced) binary search tree, together with helpers for clients which
visualize such a tree.

The tree itself lives in sub-package bst. It offers insertion, lookup with the search
path recorded, deletion by transplanting subtrees, in-order traversal and a couple of
structural metrics. There is no balancing: the shape of a tree depends on the order
of insertions.

Package layout computes node placements from a tree's shape, package track helps
clients keep their own per-node items in sync with a tree which changes underneath.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordtree
