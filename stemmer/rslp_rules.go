package stemmer

// rslpSteps is the RSLP rule set for Portuguese.
var rslpSteps = []Step{
	// Plural reduction: casas, balões, normais.
	{
		Name:           PluralReduction,
		Size:           3,
		ExceptionCount: 1,
		Rules: []Rule{
			{Suffix: "ns", MinStemLength: 1, Replacement: "m"},
			{Suffix: "ões", MinStemLength: 3, Replacement: "ão"},
			{Suffix: "ães", MinStemLength: 1, Replacement: "ão", Exceptions: words("mães")},
			{Suffix: "ais", MinStemLength: 1, Replacement: "al", Exceptions: words("cais", "mais")},
			{Suffix: "éis", MinStemLength: 2, Replacement: "el"},
			{Suffix: "eis", MinStemLength: 2, Replacement: "el"},
			{Suffix: "óis", MinStemLength: 2, Replacement: "ol"},
			{Suffix: "is", MinStemLength: 2, Replacement: "il", Exceptions: words(
				"lápis", "cais", "mais", "crúcis", "biquínis", "pois", "depois", "dois", "leis",
			)},
			{Suffix: "les", MinStemLength: 3, Replacement: "l"},
			{Suffix: "res", MinStemLength: 3, Replacement: "r", Exceptions: words("árvores")},
			{Suffix: "s", MinStemLength: 2, Exceptions: words(
				"aliás", "pires", "lápis", "cais", "mais", "mas", "menos", "férias", "fezes",
				"pêsames", "crúcis", "gás", "atrás", "moisés", "através", "convés", "ês", "país",
				"após", "ambas", "ambos", "messias", "depois",
			)},
		},
	},
	// Adverb reduction: felizmente.
	{
		Name:           AdverbReduction,
		Size:           0,
		ExceptionCount: 0,
		Rules: []Rule{
			{Suffix: "mente", MinStemLength: 4, Exceptions: words("experimente")},
		},
	},
	// Feminine reduction, only for words ending in a or ã.
	{
		Name:           FeminineReduction,
		Size:           3,
		ExceptionCount: 1,
		Rules: []Rule{
			{Suffix: "ona", MinStemLength: 3, Replacement: "ão", Exceptions: words(
				"abandona", "lona", "iona", "cortisona", "monótona", "maratona", "acetona",
				"detona", "carona",
			)},
			{Suffix: "ã", MinStemLength: 2, Replacement: "ão", Exceptions: words(
				"amanhã", "arapuã", "fã", "divã",
			)},
			{Suffix: "ora", MinStemLength: 3, Replacement: "or"},
			{Suffix: "na", MinStemLength: 4, Replacement: "no", Exceptions: words(
				"carona", "abandona", "lona", "iona", "cortisona", "monótona", "maratona",
				"acetona", "detona", "guiana", "campana", "grana", "caravana", "banana", "paisana",
			)},
			{Suffix: "inha", MinStemLength: 3, Replacement: "inho", Exceptions: words(
				"rainha", "linha", "minha",
			)},
			{Suffix: "esa", MinStemLength: 3, Replacement: "ês", Exceptions: words(
				"mesa", "obesa", "princesa", "turquesa", "ilesa", "pesa", "presa",
			)},
			{Suffix: "osa", MinStemLength: 3, Replacement: "oso", Exceptions: words("mucosa", "prosa")},
			{Suffix: "íaca", MinStemLength: 3, Replacement: "íaco"},
			{Suffix: "ica", MinStemLength: 3, Replacement: "ico", Exceptions: words("dica")},
			{Suffix: "ada", MinStemLength: 2, Replacement: "ado", Exceptions: words("pitada")},
			{Suffix: "ida", MinStemLength: 3, Replacement: "ido", Exceptions: words("vida", "dúvida")},
			{Suffix: "ída", MinStemLength: 3, Replacement: "ido", Exceptions: words("recaída", "saída")},
			{Suffix: "ima", MinStemLength: 3, Replacement: "imo", Exceptions: words("vítima")},
			{Suffix: "iva", MinStemLength: 3, Replacement: "ivo", Exceptions: words("saliva", "oliva")},
			{Suffix: "eira", MinStemLength: 3, Replacement: "eiro", Exceptions: words(
				"beira", "cadeira", "frigideira", "bandeira", "feira", "capoeira", "barreira",
				"fronteira", "besteira", "poeira",
			)},
		},
	},
	// Augmentative and diminutive reduction.
	{
		Name:           AugmentativeReduction,
		Size:           0,
		ExceptionCount: 1,
		Rules: []Rule{
			{Suffix: "díssimo", MinStemLength: 5},
			{Suffix: "abilíssimo", MinStemLength: 5},
			{Suffix: "íssimo", MinStemLength: 3},
			{Suffix: "ésimo", MinStemLength: 3},
			{Suffix: "érrimo", MinStemLength: 4},
			{Suffix: "zinho", MinStemLength: 2},
			{Suffix: "quinho", MinStemLength: 4, Replacement: "c"},
			{Suffix: "uinho", MinStemLength: 4},
			{Suffix: "adinho", MinStemLength: 3},
			{Suffix: "inho", MinStemLength: 3, Exceptions: words("caminho", "cominho")},
			{Suffix: "alhão", MinStemLength: 4},
			{Suffix: "uça", MinStemLength: 4},
			{Suffix: "aço", MinStemLength: 4, Exceptions: words("antebraço")},
			{Suffix: "aça", MinStemLength: 4},
			{Suffix: "adão", MinStemLength: 4},
			{Suffix: "idão", MinStemLength: 4},
			{Suffix: "ázio", MinStemLength: 3, Exceptions: words("topázio")},
			{Suffix: "arraz", MinStemLength: 4},
			{Suffix: "zarrão", MinStemLength: 3},
			{Suffix: "arrão", MinStemLength: 4},
			{Suffix: "arra", MinStemLength: 3},
			{Suffix: "zão", MinStemLength: 2, Exceptions: words("coalizão")},
			{Suffix: "ão", MinStemLength: 3, Exceptions: words(
				"camarão", "chimarrão", "canção", "coração", "embrião", "grotão", "glutão",
				"ficção", "fogão", "feição", "furacão", "gamão", "lampião", "leão", "macacão",
				"nação", "órfão", "orgão", "patrão", "portão", "quinhão", "rincão", "tração",
				"falcão", "espião", "mamão", "folião", "cordão", "aptidão", "campeão", "colchão",
				"limão", "leilão", "melão", "barão", "milhão", "bilhão", "fusão", "cristão",
				"ilusão", "capitão", "estação", "senão",
			)},
		},
	},
	// Noun suffix reduction.
	{
		Name:           NounReduction,
		Size:           0,
		ExceptionCount: 0,
		Rules: []Rule{
			{Suffix: "encialista", MinStemLength: 4},
			{Suffix: "alista", MinStemLength: 5},
			{Suffix: "agem", MinStemLength: 3, Exceptions: words(
				"coragem", "chantagem", "vantagem", "carruagem",
			)},
			{Suffix: "iamento", MinStemLength: 4},
			{Suffix: "amento", MinStemLength: 3, Exceptions: words(
				"firmamento", "fundamento", "departamento",
			)},
			{Suffix: "imento", MinStemLength: 3},
			{Suffix: "mento", MinStemLength: 6, Exceptions: words(
				"firmamento", "elemento", "complemento", "instrumento", "departamento",
			)},
			{Suffix: "alizado", MinStemLength: 4},
			{Suffix: "atizado", MinStemLength: 4},
			{Suffix: "tizado", MinStemLength: 4, Exceptions: words("alfabetizado")},
			{Suffix: "izado", MinStemLength: 5, Exceptions: words("organizado", "pulverizado")},
			{Suffix: "ativo", MinStemLength: 4, Exceptions: words("pejorativo", "relativo")},
			{Suffix: "tivo", MinStemLength: 4, Exceptions: words("relativo")},
			{Suffix: "ivo", MinStemLength: 4, Exceptions: words(
				"passivo", "possessivo", "pejorativo", "positivo",
			)},
			{Suffix: "ado", MinStemLength: 2, Exceptions: words("grado")},
			{Suffix: "ido", MinStemLength: 3, Exceptions: words(
				"cândido", "consolido", "rápido", "decido", "tímido", "duvido", "marido",
			)},
			{Suffix: "ador", MinStemLength: 3},
			{Suffix: "edor", MinStemLength: 3},
			{Suffix: "idor", MinStemLength: 4, Exceptions: words("ouvidor")},
			{Suffix: "dor", MinStemLength: 4, Exceptions: words("ouvidor")},
			{Suffix: "sor", MinStemLength: 4, Exceptions: words("assessor")},
			{Suffix: "atoria", MinStemLength: 5},
			{Suffix: "tor", MinStemLength: 3, Exceptions: words(
				"benfeitor", "leitor", "editor", "pastor", "produtor", "promotor", "consultor",
			)},
			{Suffix: "or", MinStemLength: 2, Exceptions: words(
				"motor", "melhor", "redor", "rigor", "sensor", "tambor", "tumor", "assessor",
				"benfeitor", "pastor", "terior", "favor", "autor",
			)},
			{Suffix: "abilidade", MinStemLength: 5},
			{Suffix: "icionista", MinStemLength: 4},
			{Suffix: "cionista", MinStemLength: 5},
			{Suffix: "ionista", MinStemLength: 5},
			{Suffix: "ionar", MinStemLength: 5},
			{Suffix: "ional", MinStemLength: 4},
			{Suffix: "ência", MinStemLength: 3},
			{Suffix: "ância", MinStemLength: 4, Exceptions: words("ambulância")},
			{Suffix: "edouro", MinStemLength: 3},
			{Suffix: "queiro", MinStemLength: 3, Replacement: "c"},
			{Suffix: "adeiro", MinStemLength: 4, Exceptions: words("desfiladeiro")},
			{Suffix: "eiro", MinStemLength: 3, Exceptions: words("desfiladeiro", "pioneiro", "mosteiro")},
			{Suffix: "uoso", MinStemLength: 3},
			{Suffix: "oso", MinStemLength: 3, Exceptions: words("precioso")},
			{Suffix: "alizaç", MinStemLength: 5},
			{Suffix: "atizaç", MinStemLength: 5},
			{Suffix: "tizaç", MinStemLength: 5},
			{Suffix: "izaç", MinStemLength: 5, Exceptions: words("organizaç")},
			{Suffix: "aç", MinStemLength: 3, Exceptions: words("equaç", "relaç")},
			{Suffix: "iç", MinStemLength: 3, Exceptions: words("eleiç")},
			{Suffix: "ário", MinStemLength: 3, Exceptions: words(
				"voluntário", "salário", "aniversário", "diário", "lionário", "armário",
			)},
			{Suffix: "atório", MinStemLength: 3},
			{Suffix: "rio", MinStemLength: 5, Exceptions: words(
				"voluntário", "salário", "aniversário", "diário", "compulsório", "lionário",
				"próprio", "stério", "armário",
			)},
			{Suffix: "ério", MinStemLength: 6},
			{Suffix: "ês", MinStemLength: 4},
			{Suffix: "eza", MinStemLength: 3},
			{Suffix: "ez", MinStemLength: 4},
			{Suffix: "esco", MinStemLength: 4},
			{Suffix: "ante", MinStemLength: 2, Exceptions: words(
				"gigante", "elefante", "adiante", "possante", "instante", "restaurante",
			)},
			{Suffix: "ástico", MinStemLength: 4, Exceptions: words("eclesiástico")},
			{Suffix: "alístico", MinStemLength: 3},
			{Suffix: "áutico", MinStemLength: 4},
			{Suffix: "êutico", MinStemLength: 4},
			{Suffix: "tico", MinStemLength: 3, Exceptions: words(
				"político", "eclesiástico", "diagnostico", "prático", "doméstico", "diagnóstico",
				"idêntico", "alopático", "artístico", "autêntico", "eclético", "crítico", "critico",
			)},
			{Suffix: "ico", MinStemLength: 4, Exceptions: words("tico", "público", "explico")},
			{Suffix: "ividade", MinStemLength: 5},
			{Suffix: "idade", MinStemLength: 4, Exceptions: words("autoridade", "comunidade")},
			{Suffix: "oria", MinStemLength: 4, Exceptions: words("categoria")},
			{Suffix: "encial", MinStemLength: 5},
			{Suffix: "ista", MinStemLength: 4},
			{Suffix: "auta", MinStemLength: 5},
			{Suffix: "quice", MinStemLength: 4, Replacement: "c"},
			{Suffix: "ice", MinStemLength: 4, Exceptions: words("cúmplice")},
			{Suffix: "íaco", MinStemLength: 3},
			{Suffix: "ente", MinStemLength: 4, Exceptions: words(
				"freqüente", "alimente", "acrescente", "permanente", "oriente", "aparente",
			)},
			{Suffix: "ense", MinStemLength: 5},
			{Suffix: "inal", MinStemLength: 3},
			{Suffix: "ano", MinStemLength: 4},
			{Suffix: "ável", MinStemLength: 2, Exceptions: words(
				"afável", "razoável", "potável", "vulnerável",
			)},
			{Suffix: "ível", MinStemLength: 3, Exceptions: words("possível")},
			{Suffix: "vel", MinStemLength: 5, Exceptions: words("possível", "vulnerável", "solúvel")},
			{Suffix: "bil", MinStemLength: 3, Replacement: "vel"},
			{Suffix: "ura", MinStemLength: 4, Exceptions: words("imatura", "acupuntura", "costura")},
			{Suffix: "ural", MinStemLength: 4},
			{Suffix: "ual", MinStemLength: 3, Exceptions: words("bissexual", "virtual", "visual", "pontual")},
			{Suffix: "ial", MinStemLength: 3},
			{Suffix: "al", MinStemLength: 4, Exceptions: words(
				"afinal", "animal", "estatal", "bissexual", "desleal", "fiscal", "formal",
				"pessoal", "liberal", "postal", "virtual", "visual", "pontual", "sideral",
				"sucursal",
			)},
			{Suffix: "alismo", MinStemLength: 4},
			{Suffix: "ivismo", MinStemLength: 4},
			{Suffix: "ismo", MinStemLength: 3, Exceptions: words("cinismo")},
		},
	},
	// Verb suffix reduction, only when no nominal suffix was removed.
	{
		Name:           VerbReduction,
		Size:           0,
		ExceptionCount: 0,
		Rules: []Rule{
			{Suffix: "aríamo", MinStemLength: 2},
			{Suffix: "ássemo", MinStemLength: 2},
			{Suffix: "eríamo", MinStemLength: 2},
			{Suffix: "êssemo", MinStemLength: 2},
			{Suffix: "iríamo", MinStemLength: 3},
			{Suffix: "íssemo", MinStemLength: 3},
			{Suffix: "áramo", MinStemLength: 2},
			{Suffix: "árei", MinStemLength: 2},
			{Suffix: "aremo", MinStemLength: 2},
			{Suffix: "ariam", MinStemLength: 2},
			{Suffix: "aríei", MinStemLength: 2},
			{Suffix: "ássei", MinStemLength: 2},
			{Suffix: "assem", MinStemLength: 2},
			{Suffix: "ávamo", MinStemLength: 2},
			{Suffix: "êramo", MinStemLength: 3},
			{Suffix: "eremo", MinStemLength: 3},
			{Suffix: "eriam", MinStemLength: 3},
			{Suffix: "eríei", MinStemLength: 3},
			{Suffix: "êssei", MinStemLength: 3},
			{Suffix: "essem", MinStemLength: 3},
			{Suffix: "íramo", MinStemLength: 3},
			{Suffix: "iremo", MinStemLength: 3},
			{Suffix: "iriam", MinStemLength: 3},
			{Suffix: "iríei", MinStemLength: 3},
			{Suffix: "íssei", MinStemLength: 3},
			{Suffix: "issem", MinStemLength: 3},
			{Suffix: "ando", MinStemLength: 2},
			{Suffix: "endo", MinStemLength: 3},
			{Suffix: "indo", MinStemLength: 3},
			{Suffix: "ondo", MinStemLength: 3},
			{Suffix: "aram", MinStemLength: 2},
			{Suffix: "arão", MinStemLength: 2},
			{Suffix: "arde", MinStemLength: 2},
			{Suffix: "arei", MinStemLength: 2},
			{Suffix: "arem", MinStemLength: 2},
			{Suffix: "aria", MinStemLength: 2},
			{Suffix: "armo", MinStemLength: 2},
			{Suffix: "asse", MinStemLength: 2},
			{Suffix: "aste", MinStemLength: 2},
			{Suffix: "avam", MinStemLength: 2, Exceptions: words("agravam")},
			{Suffix: "ávei", MinStemLength: 2},
			{Suffix: "eram", MinStemLength: 3},
			{Suffix: "erão", MinStemLength: 3},
			{Suffix: "erde", MinStemLength: 3},
			{Suffix: "erei", MinStemLength: 3},
			{Suffix: "êrei", MinStemLength: 3},
			{Suffix: "erem", MinStemLength: 3},
			{Suffix: "eria", MinStemLength: 3},
			{Suffix: "ermo", MinStemLength: 3},
			{Suffix: "esse", MinStemLength: 3},
			{Suffix: "este", MinStemLength: 3, Exceptions: words("faroeste", "agreste")},
			{Suffix: "íamo", MinStemLength: 3},
			{Suffix: "iram", MinStemLength: 3},
			{Suffix: "íram", MinStemLength: 3},
			{Suffix: "irão", MinStemLength: 2},
			{Suffix: "irde", MinStemLength: 2},
			{Suffix: "irei", MinStemLength: 3, Exceptions: words("admirei")},
			{Suffix: "irem", MinStemLength: 3, Exceptions: words("adquirem")},
			{Suffix: "iria", MinStemLength: 3},
			{Suffix: "irmo", MinStemLength: 3},
			{Suffix: "isse", MinStemLength: 3},
			{Suffix: "iste", MinStemLength: 4},
			{Suffix: "iava", MinStemLength: 4, Exceptions: words("ampliava")},
			{Suffix: "amo", MinStemLength: 2},
			{Suffix: "iona", MinStemLength: 3},
			{Suffix: "ara", MinStemLength: 2, Exceptions: words("arara", "prepara")},
			{Suffix: "ará", MinStemLength: 2, Exceptions: words("alvará")},
			{Suffix: "are", MinStemLength: 2, Exceptions: words("prepare")},
			{Suffix: "ava", MinStemLength: 2, Exceptions: words("agrava")},
			{Suffix: "emo", MinStemLength: 2},
			{Suffix: "era", MinStemLength: 3, Exceptions: words("acelera", "espera")},
			{Suffix: "erá", MinStemLength: 3},
			{Suffix: "ere", MinStemLength: 3, Exceptions: words("espere")},
			{Suffix: "iam", MinStemLength: 3, Exceptions: words("enfiam", "ampliam", "elogiam", "ensaiam")},
			{Suffix: "íei", MinStemLength: 3},
			{Suffix: "imo", MinStemLength: 3, Exceptions: words(
				"reprimo", "intimo", "íntimo", "nimo", "queimo", "ximo",
			)},
			{Suffix: "ira", MinStemLength: 3, Exceptions: words("fronteira", "sátira")},
			{Suffix: "ído", MinStemLength: 3},
			{Suffix: "irá", MinStemLength: 3},
			{Suffix: "tizar", MinStemLength: 4, Exceptions: words("alfabetizar")},
			{Suffix: "izar", MinStemLength: 5, Exceptions: words("organizar")},
			{Suffix: "itar", MinStemLength: 5, Exceptions: words("acreditar", "explicitar", "estreitar")},
			{Suffix: "ire", MinStemLength: 3, Exceptions: words("adquire")},
			{Suffix: "omo", MinStemLength: 3},
			{Suffix: "ai", MinStemLength: 2},
			{Suffix: "am", MinStemLength: 2},
			{Suffix: "ear", MinStemLength: 4, Exceptions: words("alardear", "nuclear")},
			{Suffix: "ar", MinStemLength: 2, Exceptions: words("azar", "bazaar", "patamar")},
			{Suffix: "uei", MinStemLength: 3},
			{Suffix: "uía", MinStemLength: 5, Replacement: "u"},
			{Suffix: "ei", MinStemLength: 3},
			{Suffix: "guem", MinStemLength: 3, Replacement: "g"},
			{Suffix: "em", MinStemLength: 2, Exceptions: words("alem", "virgem")},
			{Suffix: "er", MinStemLength: 2, Exceptions: words("éter", "pier")},
			{Suffix: "eu", MinStemLength: 3, Exceptions: words("chapeu")},
			{Suffix: "ia", MinStemLength: 3, Exceptions: words(
				"estória", "fatia", "acia", "praia", "elogia", "mania", "lábia", "aprecia",
				"polícia", "arredia", "cheia", "ásia",
			)},
			{Suffix: "ir", MinStemLength: 3, Exceptions: words("freir")},
			{Suffix: "iu", MinStemLength: 3},
			{Suffix: "eou", MinStemLength: 5},
			{Suffix: "ou", MinStemLength: 3},
			{Suffix: "i", MinStemLength: 3},
		},
	},
	// Final vowel removal, only when nothing else was removed.
	{
		Name:           VowelReduction,
		Size:           0,
		ExceptionCount: 0,
		Rules: []Rule{
			{Suffix: "bil", MinStemLength: 2, Replacement: "vel"},
			{Suffix: "gue", MinStemLength: 2, Replacement: "g", Exceptions: words("gangue", "jegue")},
			{Suffix: "á", MinStemLength: 3},
			{Suffix: "ê", MinStemLength: 3, Exceptions: words("bebê")},
			{Suffix: "a", MinStemLength: 3, Exceptions: words("ásia")},
			{Suffix: "e", MinStemLength: 3},
			{Suffix: "o", MinStemLength: 3, Exceptions: words("ão")},
		},
	},
	// Accent removal, always applied last.
	{
		Name:           AccentReduction,
		Size:           0,
		ExceptionCount: 0,
		Rules: []Rule{
			{Suffix: "á", MinStemLength: 1, Replacement: "a"},
			{Suffix: "â", MinStemLength: 1, Replacement: "a"},
			{Suffix: "ó", MinStemLength: 1, Replacement: "o"},
			{Suffix: "ô", MinStemLength: 1, Replacement: "o"},
			{Suffix: "é", MinStemLength: 1, Replacement: "e"},
			{Suffix: "í", MinStemLength: 1, Replacement: "i"},
			{Suffix: "ú", MinStemLength: 1, Replacement: "u"},
		},
	},
}
