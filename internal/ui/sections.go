package ui

// Pre-built landing page sections. Each returns a static HTML fragment
// that the page components stitch together.

func hero() string {
	return `
	<section class="py-5 text-center container">
		<h1 class="display-4">Reports your whole team can read</h1>
		<p class="lead text-muted">Reportly turns raw numbers into shareable reports in minutes. Connect a source, pick a template, hit export.</p>
		<a href="/auth/google?signup=1" class="btn btn-primary btn-lg">Start free</a>
		<a href="/pricing" class="btn btn-outline-secondary btn-lg">See pricing</a>
	</section>`
}

func features() string {
	return `
	<section id="features" class="container py-5">
		<div class="row">
			<div class="col-md-4">
				<h3>Build</h3>
				<p>Assemble reports from reusable blocks instead of starting from a blank page.</p>
			</div>
			<div class="col-md-4">
				<h3>Share</h3>
				<p>Every report gets a link your team can open without another login dance.</p>
			</div>
			<div class="col-md-4">
				<h3>Export</h3>
				<p>One click to CSV when the spreadsheet people come asking.</p>
			</div>
		</div>
	</section>`
}

func pricingSection() string {
	return `
	<section id="pricing" class="container py-5">
		<h2 class="text-center mb-4">Pricing</h2>
		<div class="row">
			<div class="col-md-4">
				<div class="card">
					<div class="card-body text-center">
						<h4>Free</h4>
						<p class="display-6">$0</p>
						<p class="text-muted">3 reports, CSV export included.</p>
						<a href="/auth/google?signup=1" class="btn btn-outline-primary">Start free</a>
					</div>
				</div>
			</div>
			<div class="col-md-4">
				<div class="card border-primary">
					<div class="card-body text-center">
						<h4>Pro</h4>
						<p class="display-6">$12</p>
						<p class="text-muted">Unlimited reports, scheduled exports.</p>
						<a href="/auth/google?signup=1" class="btn btn-primary">Upgrade</a>
					</div>
				</div>
			</div>
			<div class="col-md-4">
				<div class="card">
					<div class="card-body text-center">
						<h4>Team</h4>
						<p class="display-6">$39</p>
						<p class="text-muted">Shared workspaces and priority support.</p>
						<a href="/auth/google?signup=1" class="btn btn-outline-primary">Upgrade</a>
					</div>
				</div>
			</div>
		</div>
	</section>`
}

func callToAction() string {
	return `
	<section class="py-5 bg-light text-center">
		<div class="container">
			<h2>Ready when you are</h2>
			<p class="lead">Sign in with Google and build your first report before the coffee cools.</p>
			<a href="/auth/google?signup=1" class="btn btn-primary btn-lg">Start free</a>
		</div>
	</section>`
}

func footer() string {
	return `
	<footer class="py-4 border-top">
		<div class="container d-flex justify-content-between">
			<span class="text-muted">Reportly</span>
			<span class="text-muted"><a href="/pricing">Pricing</a> &middot; <a href="/auth/google">Sign in</a></span>
		</div>
	</footer>`
}
