/*
Package dawg reads and writes a compact Directed Acyclic Word Graph, the word
list format that is read in place from disk without loading it into memory.

A DAWG is a trie in which shared suffixes are merged. Here each node is
stored as a run of fixed-width edge records, one per outgoing character,
ending with a record that has the end of list bit set. Every edge holds the
record index of the child node's first edge, so a lookup seeks straight to
the next list and reads one record at a time. A summary of the data format
is found at the top of disk.go.

Only the lowercase letters a to z can be stored. Records are 2, 3 or 4 bytes
wide, whichever is the smallest that can address every edge.

To create one, get a builder using dawg.NewBuilder(). Words must be added in
strictly increasing alphabetical order. After all the words are added, call
Save() or Write() to store it.

To query one, call dawg.Open() with the file name, and use Lookup() for each
word. The file is memory mapped and accessed only through positioned reads,
so a single Dawg can answer lookups from several goroutines. Call Close()
when done.
*/
package dawg
