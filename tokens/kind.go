package tokens

// SymbolKind is the category of a leaf token. The value is its type code.
type SymbolKind byte

const (
	Keyword     SymbolKind = 'k'
	Boolean     SymbolKind = 'b'
	Integer     SymbolKind = 'i'
	Float       SymbolKind = 'f'
	Character   SymbolKind = 'c'
	StringLit   SymbolKind = '\''
	TypeChar    SymbolKind = '@'
	Identifier  SymbolKind = 'n'
	Parenth     SymbolKind = '('
	Bracket     SymbolKind = '['
	Brace       SymbolKind = '{'
	ReturnOp    SymbolKind = '>'
	DoubleArrow SymbolKind = '<'
	Operator    SymbolKind = '='
	TypeOp      SymbolKind = ':'
	MemberOp    SymbolKind = '.'
	Dollar      SymbolKind = '$'

	SymbolNone SymbolKind = '?'
)

var symbolKindNames = map[SymbolKind]string{
	Keyword:     "Keyword",
	Boolean:     "Boolean",
	Integer:     "Integer",
	Float:       "Float",
	Character:   "Character",
	StringLit:   "StringLit",
	TypeChar:    "TypeChar",
	Identifier:  "Identifier",
	Parenth:     "Parenth",
	Bracket:     "Bracket",
	Brace:       "Brace",
	ReturnOp:    "ReturnOp",
	DoubleArrow: "DoubleArrow",
	Operator:    "Operator",
	TypeOp:      "TypeOp",
	MemberOp:    "MemberOp",
	Dollar:      "Dollar",
	SymbolNone:  "None",
}

func (k SymbolKind) String() string {
	if name, ok := symbolKindNames[k]; ok {
		return name
	}
	return "SymbolKind(" + string(rune(k)) + ")"
}

// CompoundKind is the category of an internal node. The value is its type code.
type CompoundKind byte

const (
	RawType      CompoundKind = 'r'
	Tuple        CompoundKind = ','
	List         CompoundKind = 'l'
	Struct       CompoundKind = 's'
	StructAccess CompoundKind = 'S'
	Type         CompoundKind = 't'
	TypeName     CompoundKind = 'N'
	Body         CompoundKind = '}'
	FuncDef      CompoundKind = 'F'
	Loop         CompoundKind = 'L'
	Cast         CompoundKind = 'a'
	StructDef    CompoundKind = 'd'
	Statement    CompoundKind = 'I'
	Program      CompoundKind = 'p'

	CompoundNone CompoundKind = '!'
)

var compoundKindNames = map[CompoundKind]string{
	RawType:      "RawType",
	Tuple:        "Tuple",
	List:         "List",
	Struct:       "Struct",
	StructAccess: "StructAccess",
	Type:         "Type",
	TypeName:     "TypeName",
	Body:         "Body",
	FuncDef:      "FuncDef",
	Loop:         "Loop",
	Cast:         "Cast",
	StructDef:    "StructDef",
	Statement:    "Statement",
	Program:      "Program",
	CompoundNone: "None",
}

func (k CompoundKind) String() string {
	if name, ok := compoundKindNames[k]; ok {
		return name
	}
	return "CompoundKind(" + string(rune(k)) + ")"
}
