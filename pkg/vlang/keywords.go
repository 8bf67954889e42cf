package vlang

// keywordTables maps each Standard to the symbols it introduces. Each symbol
// is listed under the standard that first defined it; when flattening finds
// a symbol in more than one ancestor table, the lowest standard wins.
var keywordTables = map[Standard]map[string]Standard{
	Standard1364_1995: keywords1364_1995,
	Standard1364_2001: keywords1364_2001,
	Standard1364_2005: keywords1364_2005,
	Standard1800_2005: keywords1800_2005,
	Standard1800_2009: keywords1800_2009,
	Standard1800_2012: keywords1800_2012,
	Standard1800_2017: keywords1800_2017,
	StandardVAMS:      keywordsVAMS,
}

var keywords1364_1995 = introducedBy(Standard1364_1995,
	"always", "and", "assign", "begin", "buf", "bufif0", "bufif1", "case",
	"casex", "casez", "cmos", "deassign", "default", "defparam", "disable",
	"edge", "else", "end", "endcase", "endfunction", "endmodule",
	"endprimitive", "endspecify", "endtable", "endtask", "event", "for",
	"force", "forever", "fork", "function", "highz0", "highz1", "if",
	"ifnone", "initial", "inout", "input", "integer", "join", "large",
	"macromodule", "medium", "module", "nand", "negedge", "nmos", "nor",
	"not", "notif0", "notif1", "or", "output", "parameter", "pmos",
	"posedge", "primitive", "pull0", "pull1", "pulldown", "pullup",
	"rcmos", "real", "realtime", "reg", "release", "repeat", "rnmos",
	"rpmos", "rtran", "rtranif0", "rtranif1", "scalared", "small",
	"specify", "specparam", "strong0", "strong1", "supply0", "supply1",
	"table", "task", "time", "tran", "tranif0", "tranif1", "tri", "tri0",
	"tri1", "triand", "trior", "trireg", "vectored", "wait", "wand",
	"weak0", "weak1", "while", "wire", "wor", "xnor", "xor",
)

var keywords1364_2001 = introducedBy(Standard1364_2001,
	"automatic", "cell", "config", "design", "endconfig", "endgenerate",
	"generate", "genvar", "incdir", "include", "instance", "liblist",
	"library", "localparam", "noshowcancelled", "pulsestyle_onevent",
	"pulsestyle_ondetect", "showcancelled", "signed", "unsigned",
	"use",
)

var keywords1364_2005 = introducedBy(Standard1364_2005,
	"uwire",
)

var keywords1800_2005 = introducedBy(Standard1800_2005,
	"alias", "always_comb", "always_ff", "always_latch", "assert", "assume",
	"before", "bind", "bins", "binsof", "bit", "break", "byte", "chandle",
	"class", "clocking", "const", "constraint", "context", "continue",
	"cover", "covergroup", "coverpoint", "cross", "dist", "do", "endclass",
	"endclocking", "endgroup", "endinterface", "endpackage", "endprogram",
	"endproperty", "endsequence", "enum", "expect", "export", "extends",
	"extern", "final", "first_match", "foreach", "forkjoin", "iff",
	"ignore_bins", "illegal_bins", "import", "inside", "int", "interface",
	"intersect", "join_any", "join_none", "local", "logic", "longint",
	"matches", "modport", "new", "null", "package", "packed", "priority",
	"program", "property", "protected", "pure", "rand", "randc",
	"randcase", "randsequence", "ref", "return", "sequence", "shortint",
	"shortreal", "solve", "static", "string", "struct", "super",
	"tagged", "this", "throughout", "timeprecision", "timeunit",
	"type", "typedef", "union", "unique", "var", "virtual", "void",
	"wait_order", "wildcard", "with", "within",
)

var keywords1800_2009 = introducedBy(Standard1800_2009,
	"accept_on", "checker", "endchecker", "eventually", "global", "implies",
	"let", "nexttime", "reject_on", "restrict", "s_always", "s_eventually",
	"s_nexttime", "s_until", "s_until_with", "strong", "sync_accept_on",
	"sync_reject_on", "unique0", "until", "until_with", "untyped", "weak",
)

var keywords1800_2012 = introducedBy(Standard1800_2012,
	"implements", "interconnect", "nettype", "soft",
)

var keywords1800_2017 = introducedBy(Standard1800_2017)

var keywordsVAMS = introducedBy(StandardVAMS,
	"above", "abs", "abstol", "ac_stim", "access", "analog", "analysis",
	"branch", "connect", "connectrules", "continuous", "cross", "ddt",
	"ddx", "discipline", "discrete", "domain", "driver_update",
	"enddiscipline", "endconnectrules", "endnature", "endparamset",
	"flicker_noise", "flow", "from", "ground", "idt", "laplace_nd",
	"laplace_np", "laplace_zd", "laplace_zp", "last_crossing", "limexp",
	"nature", "net_resolution", "noise_table", "paramset", "potential",
	"slew", "white_noise", "zi_nd", "zi_np", "zi_zd", "zi_zp",
)

// compilerDirectives are backtick-prefixed tokens interpreted by the
// preprocessor. They are a flat table independent of the active standard.
var compilerDirectives = introducedBy(Standard1364_1995,
	"`celldefine", "`default_nettype", "`define", "`else", "`elsif",
	"`endcelldefine", "`endif", "`ifdef", "`ifndef", "`include", "`line",
	"`nounconnected_drive", "`resetall", "`timescale", "`unconnected_drive",
	"`undef",
)

func init() {
	for sym, std := range introducedBy(Standard1364_2001, "`begin_keywords", "`end_keywords") {
		compilerDirectives[sym] = std
	}
	for sym, std := range introducedBy(Standard1800_2005, "`pragma") {
		compilerDirectives[sym] = std
	}
}

// gatePrimitives are the built-in gate names usable as module-like
// instantiations. They are standard-agnostic: gate primitives have not
// changed across Verilog/SystemVerilog revisions.
var gatePrimitives = introducedBy(Standard1364_1995,
	"and", "buf", "bufif0", "bufif1", "cmos", "nand", "nmos", "nor", "not",
	"notif0", "notif1", "or", "pmos", "pulldown", "pullup", "rcmos",
	"rnmos", "rpmos", "rtran", "rtranif0", "rtranif1", "tran", "tranif0",
	"tranif1", "xnor", "xor",
)

// introducedBy builds a sym->standard map from a flat symbol list.
func introducedBy(std Standard, syms ...string) map[string]Standard {
	out := make(map[string]Standard, len(syms))
	for _, s := range syms {
		out[s] = std
	}
	return out
}

// IsCompilerDirective classifies a backtick-prefixed directive independent
// of the active standard.
func IsCompilerDirective(sym string) (string, bool) {
	std, ok := compilerDirectives[sym]
	if !ok {
		return "", false
	}
	return std.String(), true
}

// IsGatePrimitive classifies a gate primitive name independent of the
// active standard.
func IsGatePrimitive(sym string) (string, bool) {
	std, ok := gatePrimitives[sym]
	if !ok {
		return "", false
	}
	return std.String(), true
}
