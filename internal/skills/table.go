package skills

// Category names form a closed set; anything not in the table lands in
// CategoryOther.
const (
	CategoryBackend  = "Backend"
	CategoryFrontend = "Frontend"
	CategoryDataML   = "Data/ML"
	CategoryDevOps   = "DevOps/Cloud"
	CategoryQA       = "QA/Testing"
	CategoryMobile   = "Mobile"
	CategoryOther    = "Other"
)

// categoryPriority fixes the screening rotation order for categories that
// are present in a candidate's stack. Categories not listed here (only
// possible through future table edits) are appended after.
var categoryPriority = []string{
	CategoryBackend,
	CategoryDataML,
	CategoryFrontend,
	CategoryDevOps,
	CategoryQA,
	CategoryMobile,
	CategoryOther,
}

// categoryByToken maps lowercase skill tokens to their category.
// Loaded once, never mutated.
var categoryByToken = map[string]string{
	// Backend
	"python":  CategoryBackend,
	"java":    CategoryBackend,
	"c#":      CategoryBackend,
	"csharp":  CategoryBackend,
	"node":    CategoryBackend,
	"node.js": CategoryBackend,
	"nodejs":  CategoryBackend,
	"spring":  CategoryBackend,
	"django":  CategoryBackend,
	"fastapi": CategoryBackend,
	".net":    CategoryBackend,
	"dotnet":  CategoryBackend,
	"php":     CategoryBackend,
	"laravel": CategoryBackend,
	"express": CategoryBackend,
	"nest":    CategoryBackend,
	"nest.js": CategoryBackend,
	"nestjs":  CategoryBackend,
	"golang":  CategoryBackend,
	"go":      CategoryBackend,
	"ruby":    CategoryBackend,
	"rails":   CategoryBackend,

	// Frontend
	"javascript": CategoryFrontend,
	"typescript": CategoryFrontend,
	"react":      CategoryFrontend,
	"react.js":   CategoryFrontend,
	"reactjs":    CategoryFrontend,
	"vue":        CategoryFrontend,
	"vue.js":     CategoryFrontend,
	"vuejs":      CategoryFrontend,
	"angular":    CategoryFrontend,
	"svelte":     CategoryFrontend,
	"next.js":    CategoryFrontend,
	"nextjs":     CategoryFrontend,
	"nuxt":       CategoryFrontend,
	"html":       CategoryFrontend,
	"css":        CategoryFrontend,
	"tailwind":   CategoryFrontend,
	"bootstrap":  CategoryFrontend,

	// Data / ML
	"pandas":       CategoryDataML,
	"numpy":        CategoryDataML,
	"scikit-learn": CategoryDataML,
	"sklearn":      CategoryDataML,
	"tensorflow":   CategoryDataML,
	"pytorch":      CategoryDataML,
	"keras":        CategoryDataML,
	"mlflow":       CategoryDataML,
	"airflow":      CategoryDataML,
	"spark":        CategoryDataML,
	"pyspark":      CategoryDataML,
	"sql":          CategoryDataML,
	"postgres":     CategoryDataML,
	"postgresql":   CategoryDataML,
	"mysql":        CategoryDataML,
	"bigquery":     CategoryDataML,
	"snowflake":    CategoryDataML,
	"databricks":   CategoryDataML,
	"lookml":       CategoryDataML,
	"dbt":          CategoryDataML,

	// DevOps / Cloud
	"docker":         CategoryDevOps,
	"kubernetes":     CategoryDevOps,
	"k8s":            CategoryDevOps,
	"aws":            CategoryDevOps,
	"azure":          CategoryDevOps,
	"gcp":            CategoryDevOps,
	"google cloud":   CategoryDevOps,
	"terraform":      CategoryDevOps,
	"ansible":        CategoryDevOps,
	"jenkins":        CategoryDevOps,
	"github actions": CategoryDevOps,
	"gitlab ci":      CategoryDevOps,
	"ci/cd":          CategoryDevOps,
	"linux":          CategoryDevOps,

	// QA / Testing
	"pytest":      CategoryQA,
	"junit":       CategoryQA,
	"selenium":    CategoryQA,
	"cypress":     CategoryQA,
	"playwright":  CategoryQA,
	"postman":     CategoryQA,
	"restassured": CategoryQA,

	// Mobile
	"android":      CategoryMobile,
	"kotlin":       CategoryMobile,
	"swift":        CategoryMobile,
	"ios":          CategoryMobile,
	"react native": CategoryMobile,
	"flutter":      CategoryMobile,
}
