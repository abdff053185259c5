package tablegen

// Format selects the generated output language.
type Format string

const (
	FormatCPP  Format = "cpp"
	FormatGo   Format = "go"
	FormatCBOR Format = "cbor"
)

const (
	defaultCPPTableName = "huffman_table"
	defaultGoTableName  = "huffmanTable"
	defaultNamespace    = "logi"
	defaultInclude      = "si/huffman.h"
	defaultGoPackage    = "freesat"
	defaultGoNodeType   = "Node"
)

type Options struct {
	// TableName prefixes the dispatch array name, the variant suffix is
	// appended to it. Empty selects a default for the format.
	TableName  string
	Namespace  string
	Include    string
	GoPackage  string
	GoNodeType string
}

type Option func(*Options)

func NewOptions(opts ...Option) Options {
	o := Options{
		Namespace:  defaultNamespace,
		Include:    defaultInclude,
		GoPackage:  defaultGoPackage,
		GoNodeType: defaultGoNodeType,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithTableName(name string) Option {
	return func(o *Options) { o.TableName = name }
}

func WithNamespace(ns string) Option {
	return func(o *Options) { o.Namespace = ns }
}

// WithInclude sets the header providing the HuffmanNode declaration.
func WithInclude(path string) Option {
	return func(o *Options) { o.Include = path }
}

func WithGoPackage(pkg string) Option {
	return func(o *Options) { o.GoPackage = pkg }
}

// WithGoNodeType names the struct type, declared elsewhere in the target
// package, with uint8 Left and Right fields.
func WithGoNodeType(name string) Option {
	return func(o *Options) { o.GoNodeType = name }
}

func (o Options) tableName(def string) string {
	if o.TableName == "" {
		return def
	}
	return o.TableName
}
