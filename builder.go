package dawg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type edgeStart struct {
	node int
	ch   byte
}

type uncheckedNode struct {
	parent int
	ch     byte
	child  int
}

const (
	rootNode = 0

	progressEvery = 10000
)

// Builder creates a compact DAWG. Words must be added in strictly
// increasing alphabetical order, and may only contain the letters a to z.
type Builder struct {
	// these are erased after we finish building
	lastWord       string
	nextID         int
	uncheckedNodes []uncheckedNode
	minimizedNodes map[string]int
	names          map[int][]edgeStart
	final          map[int]bool

	// these are kept
	finished bool
	numAdded int
	numNodes int
	data     []byte
	err      error
	started  time.Time

	logger *zap.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used to report progress.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a new, empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		nextID:         1,
		minimizedNodes: make(map[string]int),
		names:          make(map[int][]edgeStart),
		final:          make(map[int]bool),
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CanAdd will return true if the word can be added to the Builder.
func (b *Builder) CanAdd(word string) bool {
	return !b.finished && validWord(word) &&
		(b.numAdded == 0 || word > b.lastWord)
}

// Add adds a word to the structure.
func (b *Builder) Add(word string) error {
	if b.finished {
		return ErrFinished
	}
	if !validWord(word) {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	if b.numAdded > 0 && word <= b.lastWord {
		return fmt.Errorf("%w: %q after %q", ErrWordOrder, word, b.lastWord)
	}
	if b.numAdded == 0 {
		b.started = time.Now()
	}

	// find common prefix between word and previous word
	commonPrefix := 0
	for commonPrefix < len(word) && commonPrefix < len(b.lastWord) &&
		word[commonPrefix] == b.lastWord[commonPrefix] {
		commonPrefix++
	}

	// Check the uncheckedNodes for redundant nodes, proceeding from last
	// one down to the common prefix size. Then truncate the list at that
	// point.
	b.minimize(commonPrefix)

	// add the suffix, starting from the correct node mid-way through the
	// graph
	node := rootNode
	if len(b.uncheckedNodes) > 0 {
		node = b.uncheckedNodes[len(b.uncheckedNodes)-1].child
	}

	for i := commonPrefix; i < len(word); i++ {
		nextNode := b.newNode()
		b.names[node] = append(b.names[node], edgeStart{nextNode, word[i]})
		b.uncheckedNodes = append(b.uncheckedNodes, uncheckedNode{node, word[i], nextNode})
		node = nextNode
	}

	b.final[node] = true
	b.lastWord = word
	b.numAdded++

	if b.numAdded%progressEvery == 0 {
		b.logger.Debug("adding words", zap.Int("added", b.numAdded), zap.String("last", word))
	}
	return nil
}

// NumAdded returns the number of words added.
func (b *Builder) NumAdded() int {
	return b.numAdded
}

// Finish minimizes and encodes the remaining structure. No words can be
// added afterwards. The returned Dawg reads the encoded bytes from memory.
func (b *Builder) Finish() (*Dawg, error) {
	if !b.finished {
		b.finished = true

		b.minimize(0)
		b.numNodes = len(b.minimizedNodes) + 1
		b.data, b.err = b.encode()

		// no longer need the graph.
		b.names = nil
		b.final = nil
		b.uncheckedNodes = nil
		b.minimizedNodes = nil
	}

	if b.err != nil {
		return nil, b.err
	}
	return Read(bytes.NewReader(b.data))
}

// Write finishes the builder and writes the encoded DAWG to w. Returns the
// number of bytes written.
func (b *Builder) Write(w io.Writer) (int64, error) {
	if _, err := b.Finish(); err != nil {
		return 0, err
	}

	n, err := w.Write(b.data)
	return int64(n), err
}

// Save writes the DAWG to disk. Returns the number of bytes written. On
// error no file is left behind.
func (b *Builder) Save(filename string) (int64, error) {
	return b.save(filename, func(name string) (io.WriteCloser, error) {
		return os.Create(name)
	})
}

func (b *Builder) save(filename string, create func(string) (io.WriteCloser, error)) (n int64, err error) {
	if _, err := b.Finish(); err != nil {
		return 0, err
	}

	f, err := create(filename)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			// don't leave a partial file behind
			err = multierr.Append(err, os.Remove(filename))
		}
	}()

	return b.Write(f)
}

// encode lays the nodes out breadth first from the root. Each node with
// outgoing edges becomes one sibling list, sorted by character.
func (b *Builder) encode() ([]byte, error) {
	if b.numAdded == 0 {
		return nil, ErrEmpty
	}

	first := make(map[int]Index)
	queued := map[int]bool{rootNode: true}
	order := []int{rootNode}
	next := rootIndex
	for i := 0; i < len(order); i++ {
		node := order[i]
		first[node] = next
		next += Index(len(b.names[node]))

		for _, edge := range b.names[node] {
			if len(b.names[edge.node]) > 0 && !queued[edge.node] {
				queued[edge.node] = true
				order = append(order, edge.node)
			}
		}
	}

	numEdges := int(next) - 1
	if numEdges > maxIndex {
		return nil, fmt.Errorf("%w: %d edges", ErrTooLarge, numEdges)
	}

	width := widthFor(numEdges)
	data := make([]byte, (numEdges+1)*width+footerLength)
	putWord(data[:width], uint32(width)|finalBit|eolBit|uint32(numEdges)<<indexBits)

	pos := width
	for _, node := range order {
		edges := b.names[node]
		for i, e := range edges {
			edge := Edge{
				Char:  e.ch,
				Final: b.final[e.node],
				EOL:   i == len(edges)-1,
				Child: first[e.node], // NoChild for leaves, which are never queued
			}
			putWord(data[pos:pos+width], edge.encode())
			pos += width
		}
	}

	binary.LittleEndian.PutUint32(data[pos:], uint32(b.numAdded))
	binary.LittleEndian.PutUint32(data[pos+4:], uint32(b.numNodes))

	b.logger.Info("dawg finished",
		zap.Int("words", b.numAdded),
		zap.Int("nodes", b.numNodes),
		zap.Int("edges", numEdges),
		zap.Int("width", width),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(b.started)))

	return data, nil
}

func (b *Builder) minimize(downTo int) {
	// proceed from the leaf up to a certain point
	for i := len(b.uncheckedNodes) - 1; i >= downTo; i-- {
		u := b.uncheckedNodes[i]
		name := b.nameOf(u.child)
		if node, ok := b.minimizedNodes[name]; ok {
			// replace the child with the previously encountered one
			b.replaceChild(u.parent, u.ch, node)
		} else {
			// add the state to the minimized nodes.
			b.minimizedNodes[name] = u.child
		}
	}

	b.uncheckedNodes = b.uncheckedNodes[:downTo]
}

func (b *Builder) newNode() int {
	b.nextID++
	return b.nextID - 1
}

func (b *Builder) nameOf(node int) string {
	// node name is _ch:id... for each child, then ! if final
	buff := bytes.Buffer{}
	for _, edge := range b.names[node] {
		buff.WriteByte('_')
		buff.WriteByte(edge.ch)
		buff.WriteByte(':')
		buff.WriteString(strconv.Itoa(edge.node))
	}

	if b.final[node] {
		buff.WriteByte('!')
	}

	return buff.String()
}

func (b *Builder) replaceChild(parent int, ch byte, child int) {
	oldChild := -1

	// go through the names info of the parent and replace the item
	name := b.names[parent]
	for i := range name {
		if name[i].ch == ch {
			oldChild = name[i].node
			name[i].node = child
			break
		}
	}

	// the old child is unreachable now, drop it to save memory
	delete(b.names, oldChild)
	delete(b.final, oldChild)
}
