package tokenize

// stopWords are filler words dropped from token sets. The lookup happens
// after canonicalization and stemming.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "for": {}, "to": {},
	"of": {}, "in": {}, "on": {}, "with": {}, "by": {}, "at": {}, "as": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "from": {}, "into": {}, "over": {}, "per": {}, "via": {},
	"your": {}, "their": {}, "this": {}, "that": {}, "those": {}, "these": {},
	"using": {}, "use": {}, "used": {}, "etc": {},
}

// synonyms maps technology-name aliases to one canonical spelling so exact
// and aliased forms merge into the same token. Both halves of a pairing map
// to the same canonical form.
var synonyms = map[string]string{
	"csharp": "c#", "c#": "c#",
	"dotnet": ".net", ".net": ".net",
	"aspnet": "asp.net", "asp.net": "asp.net",
	"js": "javascript", "ts": "typescript",
	"mssql": "sql", "sqlserver": "sql", "postgresql": "postgres",
	"py": "python", "py3": "python", "py2": "python",
	"jscript": "javascript", "nodejs": "node", "expressjs": "express",
	"reactjs": "react", "angularjs": "angular", "vuejs": "vue",
	"dockercompose": "docker", "k8s": "kubernetes",
	"ci/cd": "cicd", "ci": "cicd", "cd": "cicd",
	"ml": "machinelearning", "ai": "artificialintelligence",
	"oop": "objectoriented", "mvc": "modelviewcontroller",
	"bachelors": "bachelor", "masters": "master", "phd": "doctorate",
}
